package cache

import "time"

// CacheConfig holds TTL values per cached data type.
type CacheConfig struct {
	VehicleDataTTL   time.Duration `json:"vehicleDataTTL"`
	VehicleListTTL   time.Duration `json:"vehicleListTTL"`
	FleetSnapshotTTL time.Duration `json:"fleetSnapshotTTL"`
	KeyPrefix        string        `json:"keyPrefix"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		VehicleDataTTL:   30 * time.Second,
		VehicleListTTL:   2 * time.Minute,
		FleetSnapshotTTL: 30 * time.Second,
		KeyPrefix:        "rental:",
	}
}

// GetTTLForDataType returns appropriate TTL based on data type
func (c CacheConfig) GetTTLForDataType(dataType string) time.Duration {
	switch dataType {
	case "vehicle":
		return c.VehicleDataTTL
	case "vehicle_list":
		return c.VehicleListTTL
	case "fleet_snapshot":
		return c.FleetSnapshotTTL
	default:
		return c.VehicleDataTTL
	}
}
