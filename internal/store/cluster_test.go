package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
	"github.com/commissaire-project/bootstrap-agent/internal/store/migrations"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

var _ = Describe("ClusterStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should round-trip a cluster", func() {
		cluster := &models.Cluster{Name: "default", Network: "default"}
		Expect(s.Clusters().Save(ctx, cluster)).To(Succeed())

		retrieved, err := s.Clusters().Get(ctx, "default")
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved).To(Equal(cluster))
	})

	It("should update the network on second save (upsert)", func() {
		Expect(s.Clusters().Save(ctx, &models.Cluster{Name: "default", Network: "default"})).To(Succeed())
		Expect(s.Clusters().Save(ctx, &models.Cluster{Name: "default", Network: "backbone"})).To(Succeed())

		retrieved, err := s.Clusters().Get(ctx, "default")
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Network).To(Equal("backbone"))
	})

	It("should return ResourceNotFoundError for an unknown cluster", func() {
		_, err := s.Clusters().Get(ctx, "missing")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should list and delete clusters", func() {
		Expect(s.Clusters().Save(ctx, &models.Cluster{Name: "a"})).To(Succeed())
		Expect(s.Clusters().Save(ctx, &models.Cluster{Name: "b"})).To(Succeed())

		clusters, err := s.Clusters().List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(clusters).To(HaveLen(2))

		Expect(s.Clusters().Delete(ctx, "a")).To(Succeed())
		_, err = s.Clusters().Get(ctx, "a")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})

var _ = Describe("NetworkStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should round-trip a network with options", func() {
		network := &models.Network{
			Name:    "default",
			Type:    models.NetworkTypeFlannelEtcd,
			Options: map[string]string{"subnet": "10.254.0.0/16"},
		}
		Expect(s.Networks().Save(ctx, network)).To(Succeed())

		retrieved, err := s.Networks().Get(ctx, "default")
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved).To(Equal(network))
	})

	It("should leave options nil when none were stored", func() {
		Expect(s.Networks().Save(ctx, &models.Network{
			Name: "default",
			Type: models.NetworkTypeFlannelServer,
		})).To(Succeed())

		retrieved, err := s.Networks().Get(ctx, "default")
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Options).To(BeNil())
	})

	It("should return ResourceNotFoundError for an unknown network", func() {
		_, err := s.Networks().Get(ctx, "missing")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should delete networks", func() {
		Expect(s.Networks().Save(ctx, &models.Network{Name: "default", Type: models.NetworkTypeFlannelEtcd})).To(Succeed())
		Expect(s.Networks().Delete(ctx, "default")).To(Succeed())

		err := s.Networks().Delete(ctx, "default")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
