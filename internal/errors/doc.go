// Package errors provides structured error handling for the adventure API.
//
// Every error carries a Code (mirroring the canonical RPC code set), a
// human-readable message, an optional wrapped cause, and optional metadata.
// Codes map to HTTP statuses via Code.HTTPStatus, which the HTTP handlers
// use to translate service failures into responses.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("game state not found")
//	err := errors.InvalidArgumentf("invalid quantity: %d", qty)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get game state")
//	}
//
// Checking error types:
//
//	if errors.IsNotFound(err) {
//	    // start a fresh adventure instead
//	}
//
// # Validation
//
// Field-level validation accumulates into a single InvalidArgument error via
// ValidationBuilder, so a caller sees every problem at once:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	if cfg.Clock == nil {
//	    vb.RequiredField("Clock")
//	}
//	return vb.Build()
package errors
