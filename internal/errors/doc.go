// Package errors provides the structured error type used across rpg-idle.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Generic codes (NotFound, InvalidArgument, ...) cover
// plumbing failures; the game codes describe precondition failures of the
// progression engine:
//
//   - InsufficientFunds: a debit or upgrade could not be paid for
//   - MaxLevelReached: a building is already at its maximum level
//   - PrestigeNotAvailable: the prestige condition is not met
//   - ZoneLocked: a zone's unlock requirement is not satisfied
//   - NotCompleted: a quest reward was claimed before completion
//   - AlreadyClaimed: a quest reward was claimed twice
//   - UnknownObjectiveKind: content references an objective type the engine
//     does not implement
//
// All game codes are locally recoverable. Callers present them as a no-op or
// a message; none leave partial state behind.
//
// # Usage
//
//	if !ledger.CanAfford(cost) {
//	    return errors.InsufficientFundsf("cannot afford %s", buildingID).
//	        WithMeta("building_id", buildingID)
//	}
//
//	if errors.IsAlreadyClaimed(err) {
//	    // nothing to do
//	}
//
// Handlers convert to gRPC with ToGRPCError; the game code travels as the
// reason of an errdetails.ErrorInfo so clients can recover it with
// FromGRPCError.
package errors
