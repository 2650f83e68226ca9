package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db       *sql.DB
	hosts    *HostStore
	clusters *ClusterStore
	networks *NetworkStore
}

func NewStore(db *sql.DB) *Store {
	interceptor := newQueryInterceptor(db)
	return &Store{
		db:       db,
		hosts:    NewHostStore(interceptor),
		clusters: NewClusterStore(interceptor),
		networks: NewNetworkStore(interceptor),
	}
}

func (s *Store) Hosts() *HostStore {
	return s.hosts
}

func (s *Store) Clusters() *ClusterStore {
	return s.clusters
}

func (s *Store) Networks() *NetworkStore {
	return s.networks
}

func (s *Store) Close() error {
	return s.db.Close()
}
