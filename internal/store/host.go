package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// HostStore persists the host registry.
type HostStore struct {
	db QueryInterceptor
}

func NewHostStore(db QueryInterceptor) *HostStore {
	return &HostStore{db: db}
}

// Save inserts or updates a host keyed by its address.
func (s *HostStore) Save(ctx context.Context, host *models.Host) error {
	factsJSON, err := marshalFacts(host.Facts)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query, args, err := sq.Insert("hosts").
		Columns("address", "cluster", "ssh_key_path", "status", "os_family", "facts", "created_at", "updated_at").
		Values(host.Address, host.Cluster, host.SSHKeyPath, string(host.Status), string(host.OSFamily), factsJSON, now, now).
		Suffix(`ON CONFLICT (address) DO UPDATE SET
			cluster = EXCLUDED.cluster,
			ssh_key_path = EXCLUDED.ssh_key_path,
			status = EXCLUDED.status,
			os_family = EXCLUDED.os_family,
			facts = EXCLUDED.facts,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Get returns the host with the given address.
func (s *HostStore) Get(ctx context.Context, address string) (*models.Host, error) {
	query, args, err := sq.Select("address", "cluster", "ssh_key_path", "status", "os_family", "facts", "created_at", "updated_at").
		From("hosts").
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return nil, err
	}

	host, err := scanHost(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewHostNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return host, nil
}

// List returns every known host ordered by address.
func (s *HostStore) List(ctx context.Context) ([]models.Host, error) {
	query, args, err := sq.Select("address", "cluster", "ssh_key_path", "status", "os_family", "facts", "created_at", "updated_at").
		From("hosts").
		OrderBy("address").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hosts []models.Host
	for rows.Next() {
		host, err := scanHost(rows)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, *host)
	}
	return hosts, rows.Err()
}

// UpdateStatus moves a host to a new lifecycle state.
func (s *HostStore) UpdateStatus(ctx context.Context, address string, status models.HostStatusType) error {
	query, args, err := sq.Update("hosts").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, srvErrors.NewHostNotFoundError())
}

// SaveFacts records the normalized facts and the derived OS family.
func (s *HostStore) SaveFacts(ctx context.Context, address string, family models.OSFamily, facts *models.Facts) error {
	factsJSON, err := marshalFacts(facts)
	if err != nil {
		return err
	}

	query, args, err := sq.Update("hosts").
		Set("os_family", string(family)).
		Set("facts", factsJSON).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, srvErrors.NewHostNotFoundError())
}

// Delete removes a host from the registry.
func (s *HostStore) Delete(ctx context.Context, address string) error {
	query, args, err := sq.Delete("hosts").
		Where(sq.Eq{"address": address}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, srvErrors.NewHostNotFoundError())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHost(row rowScanner) (*models.Host, error) {
	var (
		host      models.Host
		status    string
		osFamily  string
		factsJSON sql.NullString
	)
	err := row.Scan(&host.Address, &host.Cluster, &host.SSHKeyPath, &status, &osFamily, &factsJSON, &host.CreatedAt, &host.UpdatedAt)
	if err != nil {
		return nil, err
	}

	host.Status = models.HostStatusType(status)
	host.OSFamily = models.OSFamily(osFamily)

	if factsJSON.Valid && factsJSON.String != "" {
		var facts models.Facts
		if err := json.Unmarshal([]byte(factsJSON.String), &facts); err != nil {
			return nil, err
		}
		host.Facts = &facts
	}
	return &host, nil
}

func marshalFacts(facts *models.Facts) (sql.NullString, error) {
	if facts == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(facts)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
