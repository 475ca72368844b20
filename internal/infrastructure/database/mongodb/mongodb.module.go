package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				fmt.Printf("[MONGODB] ⚠️  MongoDB non disponible - les médecins ne seront pas résolus: %v\n", err)
				return nil // Ne bloque pas le démarrage
			}

			if err := client.EnsureIndexes(timeoutCtx); err != nil {
				fmt.Printf("[MONGODB] ⚠️  Création index échouée: %v\n", err)
				return nil
			}

			fmt.Printf("[MONGODB] ✅ MongoDB connecté et opérationnel\n")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
