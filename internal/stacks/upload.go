package stacks

import (
	"strconv"

	"github.com/martiops/stackplan/internal/plan"
)

// BucketParams declares an object storage bucket.
type BucketParams struct {
	Versioned      bool     `yaml:"versioned"`
	BlockPublic    bool     `yaml:"blockPublic"`
	CORSOrigins    []string `yaml:"corsOrigins,omitempty"`
	ExpirationDays int      `yaml:"expirationDays,omitempty"`
}

// UploadStack builds the document upload path: the upload bucket, the
// function processing newly uploaded objects, and the status route on the
// websocket API.
type UploadStack struct{}

// NewUploadStack creates the upload stack.
func NewUploadStack() *UploadStack {
	return &UploadStack{}
}

// Name implements the Stage interface.
func (s *UploadStack) Name() string { return "upload" }

// Build implements the Stage interface.
func (s *UploadStack) Build(ctx *Context) error {
	if ctx.State.Network == nil {
		return &DependencyError{Stage: s.Name(), Needs: "network output"}
	}
	if ctx.State.Database == nil {
		return &DependencyError{Stage: s.Name(), Needs: "database output"}
	}
	if ctx.State.Scraping == nil {
		return &DependencyError{Stage: s.Name(), Needs: "scraping output"}
	}

	vector, err := ctx.Config.VectorStore(ctx.Environment)
	if err != nil {
		return err
	}

	network := ctx.State.Network.Network
	db := ctx.State.Database
	api := ctx.State.Scraping.API

	bucket := plan.UploadBucket(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   bucket,
		Kind: plan.KindBucket,
		Params: BucketParams{
			Versioned:   false,
			BlockPublic: true,
			CORSOrigins: []string{"*"},
		},
	})
	if err != nil {
		return err
	}

	fn := plan.UploadFunction(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   fn,
		Kind: plan.KindFunction,
		Params: FunctionParams{
			Runtime:        "python3.11",
			Handler:        "upload.handler",
			MemoryMB:       512,
			TimeoutSeconds: 300,
			SubnetTier:     SubnetTierPrivate,
			Environment: map[string]string{
				"UPLOAD_BUCKET":       string(bucket),
				"RDS_ENDPOINT":        db.RelationalEndpoint.Host,
				"REDIS_ENDPOINT":      db.CacheEndpoint.Host,
				"REDIS_PORT":          strconv.Itoa(db.CacheEndpoint.Port),
				"DB_CREDENTIALS":      db.CredentialsSecret,
				"WEBSOCKET_ENDPOINT":  plan.Ref(api, "endpoint"),
				"PINECONE_API_KEY":    vector.APIKey,
				"PINECONE_INDEX_NAME": vector.IndexName,
			},
			BucketSource: bucket,
		},
		DependsOn: []plan.Identity{network, bucket, api, db.Relational, db.Cache},
	})
	if err != nil {
		return err
	}

	err = ctx.Plan.Add(plan.Descriptor{
		ID:   plan.SocketRoute(ctx.Project, ctx.Environment, "filestatus"),
		Kind: plan.KindAPIRoute,
		Params: SocketRouteParams{
			API:      api,
			RouteKey: "filestatus",
			Target:   fn,
		},
		DependsOn: []plan.Identity{api, fn},
	})
	if err != nil {
		return err
	}

	ctx.State.Upload = &UploadOutput{
		Bucket:   bucket,
		Function: fn,
	}
	return nil
}
