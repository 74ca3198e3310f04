//go:build integration

package integration_test

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trends/trends_api/internal/api"
	"github.com/trends/trends_api/internal/api/dto"
	"github.com/trends/trends_api/internal/errlocal"
)

var _ = Describe("Trend Flow E2E", func() {
	BeforeEach(func() {
		_, err := dbPool.Exec(ctx, "TRUNCATE trends")
		Expect(err).NotTo(HaveOccurred())
	})

	It("Should create, score, list and delete a trend", func() {
		created, err := trendClient.CreateTrend(ctx, dto.CreateTrendRequest{
			Name:        "golang",
			Description: "gophers everywhere",
			Score:       1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).NotTo(Equal(uuid.Nil))

		Expect(trendClient.UpdateTrendScore(ctx, created.ID, 42)).To(Succeed())

		byName, err := trendClient.GetTrendByName(ctx, "golang")
		Expect(err).NotTo(HaveOccurred())
		Expect(byName.ID).To(Equal(created.ID))
		Expect(byName.Score).To(BeNumerically("==", 42))

		list, err := trendClient.ListTrends(ctx, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Trends).To(HaveLen(1))

		Expect(trendClient.DeleteTrend(ctx, created.ID)).To(Succeed())

		_, err = trendClient.GetTrend(ctx, created.ID)
		Expect(errlocal.IsNotFound(err)).To(BeTrue())
	})

	It("Should report a missing trend as 404 with its message", func() {
		id := uuid.New()

		resp, err := http.Get(tsServer.URL + "/api/v1/trends/" + id.String())
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

		var body api.ErrorResponse
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body.Kind).To(Equal(errlocal.KindNotFound))
		Expect(body.Message).To(Equal("trend " + id.String() + " not found"))
	})

	It("Should reject a duplicate name with 409", func() {
		_, err := trendClient.CreateTrend(ctx, dto.CreateTrendRequest{Name: "rust"})
		Expect(err).NotTo(HaveOccurred())

		_, err = trendClient.CreateTrend(ctx, dto.CreateTrendRequest{Name: "rust"})
		Expect(errlocal.KindOf(err)).To(Equal(errlocal.KindConflict))
		Expect(errlocal.MessageOf(err)).To(Equal(`trend "rust" already exists`))
	})

	It("Should report unknown endpoints through the JSON error boundary", func() {
		resp, err := http.Get(tsServer.URL + "/api/v1/nothing-here")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

		var body api.ErrorResponse
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("endpoint not found"))
		Expect(resp.Header.Get("X-Request-ID")).NotTo(BeEmpty())
	})

	It("Should look up a name containing a slash", func() {
		_, err := trendClient.CreateTrend(ctx, dto.CreateTrendRequest{Name: "ci/cd"})
		Expect(err).NotTo(HaveOccurred())

		trend, err := trendClient.GetTrendByName(ctx, "ci/cd")
		Expect(err).NotTo(HaveOccurred())
		Expect(trend.Name).To(Equal("ci/cd"))
	})

	It("Should import a batch atomically and purge everything", func() {
		_, err := trendClient.CreateTrend(ctx, dto.CreateTrendRequest{Name: "golang"})
		Expect(err).NotTo(HaveOccurred())

		_, err = trendClient.ImportTrends(ctx, []dto.CreateTrendRequest{{Name: "zig"}, {Name: "golang"}})
		Expect(errlocal.KindOf(err)).To(Equal(errlocal.KindConflict))

		_, err = trendClient.GetTrendByName(ctx, "zig")
		Expect(errlocal.IsNotFound(err)).To(BeTrue())

		_, err = trendClient.ImportTrends(ctx, []dto.CreateTrendRequest{{Name: "zig"}, {Name: "", Score: -1}})
		Expect(errlocal.KindOf(err)).To(Equal(errlocal.KindBadRequest))

		imported, err := trendClient.ImportTrends(ctx, []dto.CreateTrendRequest{{Name: "zig"}, {Name: "rust"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(imported.Imported).To(Equal(2))

		deleted, err := trendClient.PurgeTrends(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeNumerically("==", 3))

		list, err := trendClient.ListTrends(ctx, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Trends).To(BeEmpty())
	})
})
