// Package store provides SQLite-backed persistence for the recipe
// notebook: recipes, the shared ingredient dictionary, their many-to-many
// associations, and the append-only action log.
//
// Core rules:
//
//   - Ingredient names are normalized (NFC + trim + lower-case) before
//     they touch the dictionary; the UNIQUE constraint on ingredients.name
//     makes every spelling of a name resolve to one row.
//   - Every multi-row mutation (recipe + associations) runs in a single
//     transaction: it commits whole or leaves the store untouched.
//   - Audit log appends ride alongside the primary operation but never
//     fail it; append errors go to the diagnostic logger only.
//   - Filtering composes parameterized predicates; the ingredient
//     constraint is a minimum-coverage subquery counting distinct matched
//     dictionary entries per recipe.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: referential integrity and recipe-side cascade
package store
