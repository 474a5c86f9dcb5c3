package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"rental-backend/internal/models"
	"rental-backend/pkg/redis"

	redisClient "github.com/redis/go-redis/v9"
)

// RedisCacheManager implements CacheManager using Redis
type RedisCacheManager struct {
	client *redis.Client
	config CacheConfig
	ctx    context.Context
}

// NewRedisCacheManager creates a new Redis-backed cache manager
func NewRedisCacheManager(client *redis.Client, config CacheConfig) *RedisCacheManager {
	return &RedisCacheManager{
		client: client,
		config: config,
		ctx:    context.Background(),
	}
}

// GetVehicle retrieves a vehicle from cache
func (r *RedisCacheManager) GetVehicle(vehicleID int64) (*models.Vehicle, error) {
	key := r.buildKey("vehicle", strconv.FormatInt(vehicleID, 10))

	data, err := r.client.GetClient().Get(r.ctx, key).Result()
	if err != nil {
		if err == redisClient.Nil {
			return nil, nil // Cache miss, not an error
		}
		return nil, fmt.Errorf("failed to get vehicle from cache: %w", err)
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal([]byte(data), &vehicle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle data: %w", err)
	}

	return &vehicle, nil
}

// SetVehicle stores a vehicle in cache with TTL
func (r *RedisCacheManager) SetVehicle(vehicleID int64, vehicle *models.Vehicle, ttl time.Duration) error {
	key := r.buildKey("vehicle", strconv.FormatInt(vehicleID, 10))

	data, err := json.Marshal(vehicle)
	if err != nil {
		return fmt.Errorf("failed to marshal vehicle data: %w", err)
	}

	if err := r.client.GetClient().Set(r.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set vehicle in cache: %w", err)
	}

	return nil
}

// InvalidateVehicle removes a specific vehicle from cache
func (r *RedisCacheManager) InvalidateVehicle(vehicleID int64) error {
	key := r.buildKey("vehicle", strconv.FormatInt(vehicleID, 10))
	return r.delete(key)
}

// GetVehicleList retrieves a list of vehicles from cache
func (r *RedisCacheManager) GetVehicleList(key string) ([]*models.Vehicle, error) {
	cacheKey := r.buildKey("vehicle_list", key)

	data, err := r.client.GetClient().Get(r.ctx, cacheKey).Result()
	if err != nil {
		if err == redisClient.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get vehicle list from cache: %w", err)
	}

	var vehicles []*models.Vehicle
	if err := json.Unmarshal([]byte(data), &vehicles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle list data: %w", err)
	}

	return vehicles, nil
}

// SetVehicleList stores a list of vehicles in cache
func (r *RedisCacheManager) SetVehicleList(key string, vehicles []*models.Vehicle, ttl time.Duration) error {
	cacheKey := r.buildKey("vehicle_list", key)

	data, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("failed to marshal vehicle list data: %w", err)
	}

	if err := r.client.GetClient().Set(r.ctx, cacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set vehicle list in cache: %w", err)
	}

	return nil
}

// InvalidateVehicleLists removes all cached vehicle lists
func (r *RedisCacheManager) InvalidateVehicleLists() error {
	pattern := r.buildKey("vehicle_list", "*")

	keys, err := r.client.GetClient().Keys(r.ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to scan vehicle list keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.GetClient().Del(r.ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete vehicle list keys: %w", err)
	}

	return nil
}

// GetFleetSnapshot retrieves the fleet snapshot for a reference date
func (r *RedisCacheManager) GetFleetSnapshot(date string) (*models.FleetSnapshot, error) {
	key := r.buildKey("fleet_snapshot", date)

	data, err := r.client.GetClient().Get(r.ctx, key).Result()
	if err != nil {
		if err == redisClient.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get fleet snapshot from cache: %w", err)
	}

	var snapshot models.FleetSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fleet snapshot data: %w", err)
	}

	return &snapshot, nil
}

// SetFleetSnapshot stores the fleet snapshot for a reference date
func (r *RedisCacheManager) SetFleetSnapshot(date string, snapshot *models.FleetSnapshot, ttl time.Duration) error {
	key := r.buildKey("fleet_snapshot", date)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal fleet snapshot data: %w", err)
	}

	if err := r.client.GetClient().Set(r.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set fleet snapshot in cache: %w", err)
	}

	return nil
}

// HealthCheck verifies the Redis connection
func (r *RedisCacheManager) HealthCheck() error {
	ctx, cancel := context.WithTimeout(r.ctx, 3*time.Second)
	defer cancel()
	return r.client.GetClient().Ping(ctx).Err()
}

// Close releases the underlying Redis client
func (r *RedisCacheManager) Close() error {
	return r.client.Close()
}

func (r *RedisCacheManager) delete(key string) error {
	if err := r.client.GetClient().Del(r.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}

func (r *RedisCacheManager) buildKey(parts ...string) string {
	key := r.config.KeyPrefix
	for i, part := range parts {
		if i > 0 {
			key += ":"
		}
		key += part
	}
	return key
}
