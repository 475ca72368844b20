package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewSchemaService),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, schema *SchemaService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
			defer cancel()

			startTime := time.Now()
			if err := schema.Apply(timeoutCtx); err != nil {
				return err
			}
			if err := schema.ValidateRequiredTables(timeoutCtx); err != nil {
				return err
			}

			fmt.Printf("[BOOTSTRAP] ✅ Schéma appliqué en %v\n", time.Since(startTime))
			return nil
		},
	})
}
