// Package fifopnl computes realized and unrealized profit-and-loss for an
// ordered stream of buy/sell trades in fungible contracts, using First-In
// First-Out lot matching.
//
// The core functionalities include:
//   - Position Book: per-contract FIFO queues of open long and short lots,
//     exposing only front-peek, front-reduce, pop and push so that lot age
//     order is structurally enforced.
//   - Matching Engine: consumes trades strictly in input order, matches
//     opposing trades against the oldest open lot first, flips a position's
//     sign when a trade overshoots the open inventory, and emits an
//     append-only trade history with per-match realized PnL.
//   - Valuation: values residual open inventory against supplied mark prices
//     to produce per-lot unrealized PnL and a remaining-position snapshot.
//   - Decoding: reading trade tables from CSV and mark prices from a YAML
//     file, with optional mark-price feeds pulling quotes from provider
//     JSON endpoints.
//
// All arithmetic is exact decimal. This package serves as the foundational
// logic for the `pnl` command-line tool; report rendering and run
// persistence live in the renderer and journal packages.
package fifopnl
