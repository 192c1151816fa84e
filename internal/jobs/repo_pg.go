package jobs

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job JobPosting) error {
	const query = `
INSERT INTO job_postings (
  id, title, company_name, location, description, requirements,
  salary_min, salary_max, job_type, industry, remote_work_type,
  work_days_per_week, department, job_level, source_url, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.CompanyName,
		nullableString(job.Location),
		job.Description,
		nullableString(job.Requirements),
		job.SalaryMin,
		job.SalaryMax,
		nullableString(job.JobType),
		nullableString(job.Industry),
		nullableString(job.RemoteWorkType),
		nullableInt(job.WorkDaysPerWeek),
		nullableString(job.Department),
		nullableString(job.JobLevel),
		nullableString(job.SourceURL),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (JobPosting, error) {
	const query = selectColumns + `
FROM job_postings
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobPosting{}, ErrNotFound
		}
		return JobPosting{}, err
	}
	return job, nil
}

func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]JobPosting, error) {
	const query = selectColumns + `
FROM job_postings
ORDER BY created_at DESC, id
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobPosting, 0, limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, jobID string) error {
	const query = `DELETE FROM job_postings WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, jobID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `
SELECT id, title, company_name, location, description, requirements,
       salary_min, salary_max, job_type, industry, remote_work_type,
       work_days_per_week, department, job_level, source_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (JobPosting, error) {
	var job JobPosting
	var location, requirements, jobType, industry sql.NullString
	var remoteWorkType, department, jobLevel, sourceURL sql.NullString
	var salaryMin, salaryMax sql.NullFloat64
	var workDays sql.NullInt64
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.CompanyName,
		&location,
		&job.Description,
		&requirements,
		&salaryMin,
		&salaryMax,
		&jobType,
		&industry,
		&remoteWorkType,
		&workDays,
		&department,
		&jobLevel,
		&sourceURL,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return JobPosting{}, err
	}
	job.Location = location.String
	job.Requirements = requirements.String
	job.JobType = jobType.String
	job.Industry = industry.String
	job.RemoteWorkType = remoteWorkType.String
	job.Department = department.String
	job.JobLevel = jobLevel.String
	job.SourceURL = sourceURL.String
	if salaryMin.Valid {
		v := salaryMin.Float64
		job.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := salaryMax.Float64
		job.SalaryMax = &v
	}
	if workDays.Valid {
		job.WorkDaysPerWeek = int(workDays.Int64)
	}
	return job, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
