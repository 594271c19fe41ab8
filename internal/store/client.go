package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/meridianmobile/careline/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Cosmos-backed record store gateway.
var Module = fx.Module("store",
	fx.Provide(NewMetrics),
	fx.Provide(New),
)

// ErrUnavailable marks a store round trip that failed for a reason other
// than "no matching documents". Callers propagate it without retrying.
var ErrUnavailable = errors.New("record store unavailable")

// Client is the record store gateway. It owns one container handle per
// collection and exposes filtered reads plus single-item create/replace.
// The underlying Cosmos client is constructed once at startup and injected;
// lifecycle belongs to the fx application, not to first use.
type Client struct {
	database   *azcosmos.DatabaseClient
	containers map[string]*azcosmos.ContainerClient
	log        *zap.Logger
	metrics    *Metrics
}

type Params struct {
	fx.In

	Config  config.Config
	Log     *zap.Logger
	Metrics *Metrics
}

// New connects to the configured Cosmos account and resolves a handle for
// every known container.
func New(p Params) (*Client, error) {
	if p.Config.CosmosEndpoint == "" {
		return nil, fmt.Errorf("store: COSMOS_ENDPOINT is not set")
	}

	credential, err := azcosmos.NewKeyCredential(p.Config.CosmosKey)
	if err != nil {
		return nil, fmt.Errorf("store: creating credential: %w", err)
	}

	cosmosClient, err := azcosmos.NewClientWithKey(p.Config.CosmosEndpoint, credential, &azcosmos.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("store: creating client: %w", err)
	}

	database, err := cosmosClient.NewDatabase(p.Config.CosmosDatabase)
	if err != nil {
		return nil, fmt.Errorf("store: resolving database %q: %w", p.Config.CosmosDatabase, err)
	}

	containers := make(map[string]*azcosmos.ContainerClient, len(AllContainers))
	for _, name := range AllContainers {
		container, err := database.NewContainer(name)
		if err != nil {
			return nil, fmt.Errorf("store: resolving container %q: %w", name, err)
		}
		containers[name] = container
	}

	return &Client{
		database:   database,
		containers: containers,
		log:        p.Log.Named("store"),
		metrics:    p.Metrics,
	}, nil
}

func (c *Client) container(name string) (*azcosmos.ContainerClient, error) {
	container, ok := c.containers[name]
	if !ok {
		return nil, fmt.Errorf("store: unknown container %q", name)
	}
	return container, nil
}

// QueryItems runs a built query cross-partition and decodes every matching
// document into T, preserving server-side ordering.
func QueryItems[T any](ctx context.Context, c *Client, containerName string, q Query) ([]T, error) {
	sql, params, err := q.Build()
	if err != nil {
		return nil, err
	}
	raw, err := c.queryRaw(ctx, containerName, sql, params)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raw))
	for _, data := range raw {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("store: decoding %s document: %w", containerName, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// MaxValue scans a container for the maximum of a numeric field. The second
// return is false when the container holds no documents.
func (c *Client) MaxValue(ctx context.Context, containerName, field string) (int64, bool, error) {
	sql := fmt.Sprintf("SELECT VALUE MAX(c.%s) FROM c", field)
	raw, err := c.queryRaw(ctx, containerName, sql, nil)
	if err != nil {
		return 0, false, err
	}
	if len(raw) == 0 || string(raw[0]) == "null" || len(raw[0]) == 0 {
		return 0, false, nil
	}

	var max int64
	if err := json.Unmarshal(raw[0], &max); err != nil {
		return 0, false, fmt.Errorf("store: decoding MAX(%s) from %s: %w", field, containerName, err)
	}
	return max, true, nil
}

// CreateItem inserts a new document under the given partition.
func (c *Client) CreateItem(ctx context.Context, containerName string, pk azcosmos.PartitionKey, doc any) error {
	container, err := c.container(containerName)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encoding %s document: %w", containerName, err)
	}

	start := time.Now()
	_, err = container.CreateItem(ctx, pk, body, nil)
	c.metrics.observe(containerName, "create", start, err)
	if err != nil {
		return c.classify(containerName, "create", err)
	}
	return nil
}

// ReplaceItem overwrites an existing document in full. There is no
// compare-and-swap here: concurrent replacements of the same document are
// last-write-wins.
func (c *Client) ReplaceItem(ctx context.Context, containerName string, pk azcosmos.PartitionKey, id string, doc any) error {
	container, err := c.container(containerName)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encoding %s document: %w", containerName, err)
	}

	start := time.Now()
	_, err = container.ReplaceItem(ctx, pk, id, body, nil)
	c.metrics.observe(containerName, "replace", start, err)
	if err != nil {
		return c.classify(containerName, "replace", err)
	}
	return nil
}

func (c *Client) queryRaw(ctx context.Context, containerName, sql string, params []azcosmos.QueryParameter) ([][]byte, error) {
	container, err := c.container(containerName)
	if err != nil {
		return nil, err
	}

	opts := &azcosmos.QueryOptions{QueryParameters: params}
	pager := container.NewQueryItemsPager(sql, azcosmos.PartitionKey{}, opts)

	start := time.Now()
	var items [][]byte
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			c.metrics.observe(containerName, "query", start, err)
			return nil, c.classify(containerName, "query", err)
		}
		items = append(items, page.Items...)
	}
	c.metrics.observe(containerName, "query", start, nil)
	return items, nil
}

func (c *Client) classify(containerName, op string, err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		c.log.Warn("cosmos request failed",
			zap.String("container", containerName),
			zap.String("op", op),
			zap.Int("status", respErr.StatusCode),
			zap.Error(err),
		)
		return fmt.Errorf("store: %s %s (status %d): %w: %w", op, containerName, respErr.StatusCode, ErrUnavailable, err)
	}

	c.log.Warn("cosmos request failed",
		zap.String("container", containerName),
		zap.String("op", op),
		zap.Error(err),
	)
	return fmt.Errorf("store: %s %s: %w: %w", op, containerName, ErrUnavailable, err)
}
