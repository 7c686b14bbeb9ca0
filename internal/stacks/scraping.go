package stacks

import (
	"strconv"

	"github.com/martiops/stackplan/internal/plan"
)

// QueueParams declares a message queue.
type QueueParams struct {
	VisibilityTimeoutSeconds int `yaml:"visibilityTimeoutSeconds"`
	RetentionDays            int `yaml:"retentionDays"`
	// DeadLetterTarget, when set, routes messages that exceed
	// MaxReceiveCount to the named queue.
	DeadLetterTarget plan.Identity `yaml:"deadLetterTarget,omitempty"`
	MaxReceiveCount  int           `yaml:"maxReceiveCount,omitempty"`
}

// FunctionParams declares a serverless function.
type FunctionParams struct {
	Runtime        string            `yaml:"runtime"`
	Handler        string            `yaml:"handler"`
	MemoryMB       int               `yaml:"memoryMb"`
	TimeoutSeconds int               `yaml:"timeoutSeconds"`
	SubnetTier     string            `yaml:"subnetTier"`
	Environment    map[string]string `yaml:"environment,omitempty"`
	// QueueSource, when set, subscribes the function to the named queue.
	QueueSource plan.Identity `yaml:"queueSource,omitempty"`
	// BucketSource, when set, triggers the function on object creation in
	// the named bucket.
	BucketSource plan.Identity `yaml:"bucketSource,omitempty"`
}

// SocketAPIParams declares a websocket API.
type SocketAPIParams struct {
	Name           string `yaml:"name"`
	RouteSelection string `yaml:"routeSelection"`
	StageName      string `yaml:"stageName"`
	AutoDeploy     bool   `yaml:"autoDeploy"`
}

// SocketRouteParams attaches one route key to a websocket API.
type SocketRouteParams struct {
	API      plan.Identity `yaml:"api"`
	RouteKey string        `yaml:"routeKey"`
	// Target is the function invoked for the route. Empty for routes the
	// API handles without integration.
	Target plan.Identity `yaml:"target,omitempty"`
}

// ScrapingStack builds the ingestion pipeline: a work queue with a dead
// letter queue, the scraping function consuming it, and the websocket API
// that pushes progress updates to clients.
type ScrapingStack struct{}

// NewScrapingStack creates the scraping stack.
func NewScrapingStack() *ScrapingStack {
	return &ScrapingStack{}
}

// Name implements the Stage interface.
func (s *ScrapingStack) Name() string { return "scraping" }

// Build implements the Stage interface.
func (s *ScrapingStack) Build(ctx *Context) error {
	if ctx.State.Network == nil {
		return &DependencyError{Stage: s.Name(), Needs: "network output"}
	}
	if ctx.State.Database == nil {
		return &DependencyError{Stage: s.Name(), Needs: "database output"}
	}

	vector, err := ctx.Config.VectorStore(ctx.Environment)
	if err != nil {
		return err
	}

	network := ctx.State.Network.Network
	db := ctx.State.Database

	dlq := plan.ScrapeDeadLetterQueue(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   dlq,
		Kind: plan.KindQueue,
		Params: QueueParams{
			VisibilityTimeoutSeconds: 300,
			RetentionDays:            14,
		},
	})
	if err != nil {
		return err
	}

	queue := plan.ScrapeQueue(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   queue,
		Kind: plan.KindQueue,
		Params: QueueParams{
			VisibilityTimeoutSeconds: 900,
			RetentionDays:            4,
			DeadLetterTarget:         dlq,
			MaxReceiveCount:          2,
		},
		DependsOn: []plan.Identity{dlq},
	})
	if err != nil {
		return err
	}

	api := plan.SocketAPI(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   api,
		Kind: plan.KindAPI,
		Params: SocketAPIParams{
			Name:           string(api),
			RouteSelection: "$request.body.action",
			StageName:      ctx.Environment,
			AutoDeploy:     true,
		},
	})
	if err != nil {
		return err
	}

	fn := plan.ScrapeFunction(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   fn,
		Kind: plan.KindFunction,
		Params: FunctionParams{
			Runtime:        "python3.11",
			Handler:        "scraper.handler",
			MemoryMB:       1024,
			TimeoutSeconds: 900,
			SubnetTier:     SubnetTierPrivate,
			Environment: map[string]string{
				"QUEUE_URL":           plan.Ref(queue, "queueUrl"),
				"RDS_ENDPOINT":        db.RelationalEndpoint.Host,
				"REDIS_ENDPOINT":      db.CacheEndpoint.Host,
				"REDIS_PORT":          strconv.Itoa(db.CacheEndpoint.Port),
				"DB_CREDENTIALS":      db.CredentialsSecret,
				"WEBSOCKET_ENDPOINT":  plan.Ref(api, "endpoint"),
				"PINECONE_API_KEY":    vector.APIKey,
				"PINECONE_INDEX_NAME": vector.IndexName,
			},
			QueueSource: queue,
		},
		DependsOn: []plan.Identity{network, queue, api, db.Relational, db.Cache},
	})
	if err != nil {
		return err
	}

	for _, route := range []struct {
		role string
		key  string
	}{
		{role: "connect", key: "$connect"},
		{role: "disconnect", key: "$disconnect"},
	} {
		err = ctx.Plan.Add(plan.Descriptor{
			ID:   plan.SocketRoute(ctx.Project, ctx.Environment, route.role),
			Kind: plan.KindAPIRoute,
			Params: SocketRouteParams{
				API:      api,
				RouteKey: route.key,
			},
			DependsOn: []plan.Identity{api},
		})
		if err != nil {
			return err
		}
	}

	ctx.State.Scraping = &ScrapingOutput{
		Queue:      queue,
		DeadLetter: dlq,
		Function:   fn,
		API:        api,
	}
	return nil
}
