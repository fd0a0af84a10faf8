// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobApplicationsColumns holds the columns for the "job_applications" table.
	JobApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "applicant", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeInt64},
	}
	// JobApplicationsTable holds the schema information for the "job_applications" table.
	JobApplicationsTable = &schema.Table{
		Name:       "job_applications",
		Columns:    JobApplicationsColumns,
		PrimaryKey: []*schema.Column{JobApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_applications_jobs_applications",
				Columns:    []*schema.Column{JobApplicationsColumns[4]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_job_id_applicant",
				Unique:  true,
				Columns: []*schema.Column{JobApplicationsColumns[4], JobApplicationsColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "employer", Type: field.TypeString},
		{Name: "employee", Type: field.TypeString, Nullable: true},
		{Name: "payment", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "deadline", Type: field.TypeTime},
		{Name: "work_result", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_employer_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "entry_type", Type: field.TypeString},
		{Name: "account", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeInt64, Nullable: true},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "balance_after", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_account_seq",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[3], LedgerEntriesColumns[1]},
			},
			{
				Name:    "ledgerentry_entry_type_job_id",
				Unique:  true,
				Columns: []*schema.Column{LedgerEntriesColumns[2], LedgerEntriesColumns[4]},
			},
		},
	}
	// RatingsColumns holds the columns for the "ratings" table.
	RatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "rated_person", Type: field.TypeString},
		{Name: "rater", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeInt64},
	}
	// RatingsTable holds the schema information for the "ratings" table.
	RatingsTable = &schema.Table{
		Name:       "ratings",
		Columns:    RatingsColumns,
		PrimaryKey: []*schema.Column{RatingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ratings_jobs_ratings",
				Columns:    []*schema.Column{RatingsColumns[8]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rating_rated_person_seq",
				Unique:  false,
				Columns: []*schema.Column{RatingsColumns[2], RatingsColumns[1]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "author", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeInt64},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_jobs_reviews",
				Columns:    []*schema.Column{ReviewsColumns[6]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_job_id_seq",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[6], ReviewsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobApplicationsTable,
		JobsTable,
		LedgerEntriesTable,
		RatingsTable,
		ReviewsTable,
	}
)

func init() {
	JobApplicationsTable.ForeignKeys[0].RefTable = JobsTable
	JobApplicationsTable.Annotation = &entsql.Annotation{
		Table: "job_applications",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	LedgerEntriesTable.Annotation = &entsql.Annotation{
		Table: "ledger_entries",
	}
	RatingsTable.ForeignKeys[0].RefTable = JobsTable
	RatingsTable.Annotation = &entsql.Annotation{
		Table: "ratings",
	}
	ReviewsTable.ForeignKeys[0].RefTable = JobsTable
	ReviewsTable.Annotation = &entsql.Annotation{
		Table: "reviews",
	}
}
