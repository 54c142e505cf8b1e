package graph

import (
	"context"
	"fmt"

	"github.com/foresight-io/foresight/config"
	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/util"
	rd "github.com/go-redis/redis/v9"
)

const entitiesKey string = "graph:entities"
const relationshipsKey string = "graph:relationships"

// LoadFromRedis reads a graph snapshot published by the workspace backend.
// Entities live in a hash keyed by entity id, relationships in a list, both
// JSON encoded under the configured namespace.
func LoadFromRedis(ctx context.Context, conf config.RedisStorageConfig) (*InMemoryGraph, error) {
	client := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	defer client.Close()

	entityEncDec := util.NewJsonEncoderDecoder[model.WorkflowEntity]()
	relEncDec := util.NewJsonEncoderDecoder[model.WorkflowRelationship]()

	rawEntities, err := client.HGetAll(ctx, namespaceKey(conf.Namespace, entitiesKey)).Result()
	if err != nil {
		return nil, err
	}
	entities := make([]model.WorkflowEntity, 0, len(rawEntities))
	for _, raw := range rawEntities {
		e, err := entityEncDec.Decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		entities = append(entities, *e)
	}

	rawRels, err := client.LRange(ctx, namespaceKey(conf.Namespace, relationshipsKey), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	relationships := make([]model.WorkflowRelationship, 0, len(rawRels))
	for _, raw := range rawRels {
		r, err := relEncDec.Decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		relationships = append(relationships, *r)
	}
	return NewInMemoryGraph(entities, relationships), nil
}

func namespaceKey(namespace string, key string) string {
	return fmt.Sprintf("%s:%s", namespace, key)
}
