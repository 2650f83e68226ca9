package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// NetworkStore persists cluster network definitions.
type NetworkStore struct {
	db QueryInterceptor
}

func NewNetworkStore(db QueryInterceptor) *NetworkStore {
	return &NetworkStore{db: db}
}

// Save inserts or updates a network keyed by name.
func (s *NetworkStore) Save(ctx context.Context, network *models.Network) error {
	options, err := marshalOptions(network.Options)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert("networks").
		Columns("name", "type", "options").
		Values(network.Name, string(network.Type), options).
		Suffix("ON CONFLICT (name) DO UPDATE SET type = EXCLUDED.type, options = EXCLUDED.options").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Get returns the network with the given name.
func (s *NetworkStore) Get(ctx context.Context, name string) (*models.Network, error) {
	query, args, err := sq.Select("name", "type", "options").
		From("networks").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	network, err := scanNetwork(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewNetworkNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return network, nil
}

// List returns every network ordered by name.
func (s *NetworkStore) List(ctx context.Context) ([]models.Network, error) {
	query, args, err := sq.Select("name", "type", "options").
		From("networks").
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

	var networks []models.Network
	for rows.Next() {
		network, err := scanNetwork(rows)
		if err != nil {
			return nil, err
		}
		networks = append(networks, *network)
	}
	return networks, rows.Err()
}

// Delete removes a network.
func (s *NetworkStore) Delete(ctx context.Context, name string) error {
	query, args, err := sq.Delete("networks").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, srvErrors.NewNetworkNotFoundError())
}

func scanNetwork(row rowScanner) (*models.Network, error) {
	var (
		network     models.Network
		networkType string
		options     sql.NullString
	)
	if err := row.Scan(&network.Name, &networkType, &options); err != nil {
		return nil, err
	}

	network.Type = models.NetworkType(networkType)
	if options.Valid && options.String != "" {
		if err := json.Unmarshal([]byte(options.String), &network.Options); err != nil {
			return nil, err
		}
	}
	return &network, nil
}

func marshalOptions(options map[string]string) (sql.NullString, error) {
	if len(options) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
