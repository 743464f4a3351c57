package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"worksim.dev/worksim/common/llm"
	"worksim.dev/worksim/internal/content"
	"worksim.dev/worksim/internal/model"
)

func TestContent(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Content Suite")
}

// stubClient returns canned responses or a fixed error and records the
// last request it saw.
type stubClient struct {
	text string
	json string
	err  error

	lastReq llm.Request
}

func (c *stubClient) Complete(_ context.Context, req llm.Request) (string, error) {
	c.lastReq = req
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *stubClient) CompleteJSON(_ context.Context, req llm.Request, result any) error {
	c.lastReq = req
	if c.err != nil {
		return c.err
	}
	return json.Unmarshal([]byte(c.json), result)
}

func (c *stubClient) Model() string { return "stub" }

var _ = Describe("TemplateProvider", func() {
	var (
		provider *content.TemplateProvider
		r        *rand.Rand
		ctx      context.Context
	)

	BeforeEach(func() {
		provider = content.NewTemplateProvider()
		r = rand.New(rand.NewSource(7))
		ctx = context.Background()
	})

	It("produces non-empty task names for every project type", func() {
		types := []model.ProjectType{
			model.ProjectEngineeringSprint,
			model.ProjectBugTracking,
			model.ProjectMarketingCampaign,
			model.ProjectProductRoadmap,
			model.ProjectOperations,
			model.ProjectDesign,
		}
		for _, pt := range types {
			name, err := provider.TaskName(ctx, r, pt)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).NotTo(BeEmpty())
			Expect(len(name)).To(BeNumerically("<=", 60))
			Expect(name).NotTo(ContainSubstring("{"))
		}
	})

	It("is reproducible under the same seed", func() {
		r1 := rand.New(rand.NewSource(99))
		r2 := rand.New(rand.NewSource(99))
		for i := 0; i < 50; i++ {
			a, err := provider.TaskName(ctx, r1, model.ProjectEngineeringSprint)
			Expect(err).NotTo(HaveOccurred())
			b, err := provider.TaskName(ctx, r2, model.ProjectEngineeringSprint)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		}
	})

	It("mentions the task name in descriptions", func() {
		desc, err := provider.TaskDescription(ctx, r, "Fix bug in API", model.ProjectBugTracking, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(desc).To(ContainSubstring("Fix bug in API"))

		detailed, err := provider.TaskDescription(ctx, r, "Fix bug in API", model.ProjectBugTracking, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(detailed).To(ContainSubstring("Requirements"))
	})

	It("produces subtask names with no unfilled placeholders", func() {
		for i := 0; i < 30; i++ {
			name := provider.SubtaskName(r)
			Expect(name).NotTo(BeEmpty())
			Expect(name).NotTo(ContainSubstring("{"))
		}
	})
})

var _ = Describe("GenerativeProvider", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("serves task names from a fetched batch", func() {
		client := &stubClient{json: `{"names":["Ship rate limiter","Add audit log","Tune query planner"]}`}
		provider := content.NewGenerativeProvider(client, time.Second, 0)

		first, err := provider.TaskName(ctx, nil, model.ProjectEngineeringSprint)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal("Ship rate limiter"))

		second, err := provider.TaskName(ctx, nil, model.ProjectEngineeringSprint)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal("Add audit log"))
	})

	It("applies the configured token limit to every request", func() {
		client := &stubClient{text: "Looks good so far.", json: `{"names":["Ship rate limiter"]}`}
		provider := content.NewGenerativeProvider(client, time.Second, 96)

		_, err := provider.TaskName(ctx, nil, model.ProjectBugTracking)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.lastReq.MaxTokens).To(Equal(96))

		_, err = provider.Comment(ctx, nil, "Ship rate limiter", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.lastReq.MaxTokens).To(Equal(96))
	})

	It("propagates backend errors", func() {
		client := &stubClient{err: errors.New("connection refused")}
		provider := content.NewGenerativeProvider(client, time.Second, 0)

		_, err := provider.TaskName(ctx, nil, model.ProjectDesign)
		Expect(err).To(HaveOccurred())

		_, err = provider.Comment(ctx, nil, "Design user interface", false)
		Expect(err).To(HaveOccurred())
	})

	It("truncates long descriptions", func() {
		long := make([]byte, 2000)
		for i := range long {
			long[i] = 'x'
		}
		client := &stubClient{text: string(long)}
		provider := content.NewGenerativeProvider(client, time.Second, 0)

		desc, err := provider.TaskDescription(ctx, nil, "Implement dashboard", model.ProjectEngineeringSprint, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(desc)).To(Equal(1000))
	})
})

var _ = Describe("MixedProvider", func() {
	var (
		ctx context.Context
		r   *rand.Rand
	)

	BeforeEach(func() {
		ctx = context.Background()
		r = rand.New(rand.NewSource(1))
	})

	It("always yields content when the generative backend fails", func() {
		failing := content.NewGenerativeProvider(&stubClient{err: errors.New("unreachable")}, time.Second, 0)
		provider := content.NewMixedProvider(content.NewTemplateProvider(), failing, 1.0)

		for i := 0; i < 20; i++ {
			name, err := provider.TaskName(ctx, r, model.ProjectOperations)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).NotTo(BeEmpty())

			comment, err := provider.Comment(ctx, r, name, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(comment).NotTo(BeEmpty())
		}

		generated, fallbacks := provider.Stats()
		Expect(generated).To(BeZero())
		Expect(fallbacks).To(Equal(40))
	})

	It("never calls the backend when the ratio is zero", func() {
		failing := content.NewGenerativeProvider(&stubClient{err: errors.New("unreachable")}, time.Second, 0)
		provider := content.NewMixedProvider(content.NewTemplateProvider(), failing, 0)

		_, err := provider.TaskName(ctx, r, model.ProjectDesign)
		Expect(err).NotTo(HaveOccurred())

		_, fallbacks := provider.Stats()
		Expect(fallbacks).To(BeZero())
	})

	It("runs template-only with a nil generative provider", func() {
		provider := content.NewMixedProvider(content.NewTemplateProvider(), nil, 0.5)

		name, err := provider.TaskName(ctx, r, model.ProjectMarketingCampaign)
		Expect(err).NotTo(HaveOccurred())
		Expect(name).NotTo(BeEmpty())
	})
})
