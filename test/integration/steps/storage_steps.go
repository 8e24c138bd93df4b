package steps

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := tc.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func theReportCacheShouldContainEntries(ctx context.Context, quantity int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var keys []string
	for _, key := range tc.redis.Keys() {
		if strings.HasPrefix(key, tc.cfg.Redis.Prefix) {
			keys = append(keys, key)
		}
	}

	if len(keys) != quantity {
		return fmt.Errorf("expected %d cached reports, got %d: %v", quantity, len(keys), keys)
	}
	return nil
}
