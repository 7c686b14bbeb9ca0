package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndLookup(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")

	network := Network("marti", "dev")
	require.NoError(t, p.Add(Descriptor{ID: network, Kind: KindNetwork}))
	require.NoError(t, p.Add(Descriptor{
		ID:        AppSecurityGroup("marti", "dev"),
		Kind:      KindSecurityGroup,
		DependsOn: []Identity{network},
	}))

	assert.True(t, p.Contains(network))
	assert.False(t, p.Contains("marti-dev-ghost"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.CountByKind(KindNetwork))
}

func TestAddRejectsDuplicateIdentity(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")
	id := Network("marti", "dev")

	require.NoError(t, p.Add(Descriptor{ID: id, Kind: KindNetwork}))
	err := p.Add(Descriptor{ID: id, Kind: KindNetwork})

	var dup *DuplicateIdentityError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, id, dup.ID)
}

func TestAddRejectsUnknownDependency(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")

	err := p.Add(Descriptor{
		ID:        Service("marti", "dev"),
		Kind:      KindService,
		DependsOn: []Identity{Network("marti", "dev")},
	})

	var unk *UnknownDependencyError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, Network("marti", "dev"), unk.Missing)
}

func TestAddRejectsEmptyIdentity(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")
	assert.Error(t, p.Add(Descriptor{Kind: KindQueue}))
}

func TestDescriptorsReturnsCopy(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")
	require.NoError(t, p.Add(Descriptor{ID: Network("marti", "dev"), Kind: KindNetwork}))

	ds := p.Descriptors()
	ds[0].ID = "mutated"
	assert.Equal(t, Network("marti", "dev"), p.Descriptors()[0].ID)
}

func TestIdentityNaming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		got      Identity
		expected Identity
	}{
		{"Network", Network("marti", "dev"), "marti-dev-network"},
		{"NATGateway", NATGateway("marti", "dev", 0), "marti-dev-nat-0"},
		{"Registry", Registry("marti", "dev"), "marti-dev-registry"},
		{"Service", Service("marti", "dev"), "marti-dev-service"},
		{"AppSecurityGroup", AppSecurityGroup("marti", "dev"), "marti-dev-app-sg"},
		{"RelationalDatabase", RelationalDatabase("marti", "dev"), "marti-dev-postgres-db"},
		{"CacheCluster", CacheCluster("marti", "dev"), "marti-dev-redis-cluster"},
		{"ScrapeQueue", ScrapeQueue("marti", "prod"), "marti-prod-scraping-queue"},
		{"UploadBucket", UploadBucket("marti", "dev"), "marti-dev-upload-bucket"},
		{"AlarmTopic", AlarmTopic("marti", "dev"), "marti-dev-alarm-topic"},
		{"Alarm", Alarm("marti", "dev", "redis-cpu"), "marti-dev-redis-cpu-alarm"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestRef(t *testing.T) {
	t.Parallel()
	got := Ref(CacheCluster("marti", "dev"), "endpointAddress")
	assert.Equal(t, "${marti-dev-redis-cluster.endpointAddress}", got)
}

func TestDocumentMarshal(t *testing.T) {
	t.Parallel()
	p := New("marti", "dev")
	require.NoError(t, p.Add(Descriptor{
		ID:     Network("marti", "dev"),
		Kind:   KindNetwork,
		Params: map[string]int{"maxAzs": 2},
	}))

	doc := p.Document(map[string]string{"registryUri": "${marti-dev-registry.repositoryUri}"})
	assert.Equal(t, "marti/dev/plan.yaml", doc.Key())

	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "project: marti")
	assert.Contains(t, string(data), "marti-dev-network")
	assert.Contains(t, string(data), "registryUri")
}
