package ratingcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

type fakeClient struct {
	data   map[string]string
	getErr error
	setErr error
	sets   []string
	dels   []string
}

func (f *fakeClient) MGet(_ context.Context, keys ...string) *redis.SliceCmd {
	vals := make([]interface{}, len(keys))
	for i, k := range keys {
		if v, ok := f.data[k]; ok {
			vals[i] = v
		}
	}
	return redis.NewSliceResult(vals, f.getErr)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.sets = append(f.sets, key)
	if f.setErr == nil {
		f.data[key] = string(value.([]byte))
	}
	return redis.NewStatusResult("OK", f.setErr)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.dels = append(f.dels, keys...)
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fakeSource struct {
	ratings map[int]domain.SellerRating
	err     error
	calls   [][]int
}

func (f *fakeSource) SellerRatings(_ context.Context, ids []int) (map[int]domain.SellerRating, error) {
	f.calls = append(f.calls, append([]int(nil), ids...))
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int]domain.SellerRating)
	for _, id := range ids {
		if r, ok := f.ratings[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func TestCache_SellerRatings(t *testing.T) {
	client := &fakeClient{data: map[string]string{
		"seller:rating:1": `{"avg":8.5,"count":2}`,
	}}
	source := &fakeSource{ratings: map[int]domain.SellerRating{
		2: {SellerID: 2, Average: 6, Count: 1},
	}}
	cache := New(client, source, time.Minute)

	ratings, err := cache.SellerRatings(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 8.5, ratings[1].Average)
	assert.Equal(t, 2, ratings[1].Count)
	assert.Equal(t, 6.0, ratings[2].Average)
	assert.Equal(t, 0, ratings[3].Count)
	assert.Equal(t, [][]int{{2, 3}}, source.calls)
	assert.ElementsMatch(t, []string{"seller:rating:2", "seller:rating:3"}, client.sets)

	_, err = cache.SellerRatings(context.Background(), []int{2, 3})
	require.NoError(t, err)
	assert.Len(t, source.calls, 1, "second lookup should be served from cache")
}

func TestCache_FallsBackWhenRedisDown(t *testing.T) {
	client := &fakeClient{data: map[string]string{}, getErr: errors.New("dial tcp: connection refused"), setErr: errors.New("down")}
	source := &fakeSource{ratings: map[int]domain.SellerRating{1: {SellerID: 1, Average: 9, Count: 3}}}
	cache := New(client, source, time.Minute)

	ratings, err := cache.SellerRatings(context.Background(), []int{1})
	require.NoError(t, err)
	assert.Equal(t, 9.0, ratings[1].Average)
}

func TestCache_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	cache := New(&fakeClient{data: map[string]string{}}, source, time.Minute)

	_, err := cache.SellerRatings(context.Background(), []int{1})
	assert.Error(t, err)
}

func TestCache_WithoutClient(t *testing.T) {
	source := &fakeSource{ratings: map[int]domain.SellerRating{4: {SellerID: 4, Average: 7, Count: 1}}}
	cache := New(nil, source, time.Minute)

	ratings, err := cache.SellerRatings(context.Background(), []int{4})
	require.NoError(t, err)
	assert.Equal(t, 7.0, ratings[4].Average)
	cache.Invalidate(context.Background(), 4)
}

func TestCache_Invalidate(t *testing.T) {
	client := &fakeClient{data: map[string]string{"seller:rating:5": `{"avg":1,"count":1}`}}
	cache := New(client, &fakeSource{}, time.Minute)

	cache.Invalidate(context.Background(), 5)

	assert.Equal(t, []string{"seller:rating:5"}, client.dels)
	assert.NotContains(t, client.data, "seller:rating:5")
}
