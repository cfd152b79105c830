package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
	"github.com/redis/go-redis/v9"
)

const (
	projectKeyPrefix = "portfolio:project:"        // Project JSON: portfolio:project:{id}
	projectIDListKey = "portfolio:project:ids"     // Insertion-ordered list of ids
	projectNextIDKey = "portfolio:project:next_id" // Monotonic id counter
)

// Redis is a durable project store backed by a Redis instance. Records
// are stored as JSON values with an insertion-ordered id list alongside;
// ids come from an INCR counter so they survive restarts and deletions.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.LRange(ctx, projectIDListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list project ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.projectKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	out := make([]domain.Project, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("unmarshal project: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *Redis) Get(ctx context.Context, id string) (domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(id)).Result()
	if err == redis.Nil {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return domain.Project{}, fmt.Errorf("unmarshal project: %w", err)
	}
	return p, nil
}

func (r *Redis) Insert(ctx context.Context, p domain.Project) (domain.Project, error) {
	id, err := r.client.Incr(ctx, projectNextIDKey).Result()
	if err != nil {
		return domain.Project{}, fmt.Errorf("next project id: %w", err)
	}
	p.ID = strconv.FormatInt(id, 10)

	data, err := json.Marshal(p)
	if err != nil {
		return domain.Project{}, fmt.Errorf("marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.projectKey(p.ID), data, 0)
	pipe.RPush(ctx, projectIDListKey, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *Redis) Replace(ctx context.Context, p domain.Project) error {
	exists, err := r.client.Exists(ctx, r.projectKey(p.ID)).Result()
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if exists == 0 {
		return domain.ErrProjectNotFound
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := r.client.Set(ctx, r.projectKey(p.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, id string) (domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.projectKey(id))
	pipe.LRem(ctx, projectIDListKey, 1, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.Project{}, fmt.Errorf("delete project: %w", err)
	}
	return p, nil
}

func (r *Redis) Seed(ctx context.Context, projects []domain.Project) error {
	count, err := r.client.LLen(ctx, projectIDListKey).Result()
	if err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	var maxID int64
	pipe := r.client.Pipeline()
	for _, p := range projects {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal seed project: %w", err)
		}
		pipe.Set(ctx, r.projectKey(p.ID), data, 0)
		pipe.RPush(ctx, projectIDListKey, p.ID)
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > maxID {
			maxID = n
		}
	}
	pipe.Set(ctx, projectNextIDKey, maxID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	return nil
}

func (r *Redis) projectKey(id string) string {
	return projectKeyPrefix + id
}
