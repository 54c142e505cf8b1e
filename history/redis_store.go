package history

import (
	"context"
	"fmt"

	"github.com/foresight-io/foresight/config"
	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/util"
	rd "github.com/go-redis/redis/v9"
)

type redisStore struct {
	client    rd.UniversalClient
	namespace string
	encDec    util.EncoderDecoder[model.PredictionHistoryEntry]
}

func NewRedisStore(conf config.RedisStorageConfig) Store {
	client := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisStore{
		client:    client,
		namespace: conf.Namespace,
		encDec:    util.NewJsonEncoderDecoder[model.PredictionHistoryEntry](),
	}
}

func (s *redisStore) key(id string) string {
	return fmt.Sprintf("%s:history:%s", s.namespace, id)
}

func (s *redisStore) Put(ctx context.Context, entry model.PredictionHistoryEntry) error {
	data, err := s.encDec.Encode(entry)
	if err != nil {
		return err
	}
	err = s.client.Set(ctx, s.key(entry.Id), data, 0).Err()
	if err != nil {
		return StorageError{Message: err.Error()}
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*model.PredictionHistoryEntry, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == rd.Nil {
			return nil, StorageError{Message: fmt.Sprintf("entry %s not found", id)}
		}
		return nil, StorageError{Message: err.Error()}
	}
	return s.encDec.Decode(data)
}
