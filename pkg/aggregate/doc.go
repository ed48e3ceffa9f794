// Package aggregate implements the fan-out pipeline behind the game
// pass endpoint: enumerate the games a user created, fetch every
// game's passes in parallel, normalize the results, and serve them
// through the TTL cache.
//
// Example usage:
//
//	store := cache.New(5 * time.Minute)
//	agg := aggregate.New(roblox.New(roblox.Config{}), store)
//	records, err := agg.GamePasses(ctx, "42", false)
//
// The aggregator:
//   - Serves fresh cache entries without touching the upstream API
//   - Fails the whole request when game enumeration fails
//   - Caps fan-out at the first 10 usable universe ids
//   - Swallows per-universe fetch failures (empty contribution)
//   - Flattens results in enumeration order, never completion order
package aggregate
