package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// ClusterStore persists cluster definitions.
type ClusterStore struct {
	db QueryInterceptor
}

func NewClusterStore(db QueryInterceptor) *ClusterStore {
	return &ClusterStore{db: db}
}

// Save inserts or updates a cluster keyed by name.
func (s *ClusterStore) Save(ctx context.Context, cluster *models.Cluster) error {
	query, args, err := sq.Insert("clusters").
		Columns("name", "network").
		Values(cluster.Name, cluster.Network).
		Suffix("ON CONFLICT (name) DO UPDATE SET network = EXCLUDED.network").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Get returns the cluster with the given name.
func (s *ClusterStore) Get(ctx context.Context, name string) (*models.Cluster, error) {
	query, args, err := sq.Select("name", "network").
		From("clusters").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var cluster models.Cluster
	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&cluster.Name, &cluster.Network)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewClusterNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

// List returns every cluster ordered by name.
func (s *ClusterStore) List(ctx context.Context) ([]models.Cluster, error) {
	query, args, err := sq.Select("name", "network").
		From("clusters").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clusters []models.Cluster
	for rows.Next() {
		var cluster models.Cluster
		if err := rows.Scan(&cluster.Name, &cluster.Network); err != nil {
			return nil, err
		}
		clusters = append(clusters, cluster)
	}
	return clusters, rows.Err()
}

// Delete removes a cluster.
func (s *ClusterStore) Delete(ctx context.Context, name string) error {
	query, args, err := sq.Delete("clusters").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, srvErrors.NewClusterNotFoundError())
}
