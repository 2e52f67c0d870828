// Package errors provides structured errors for the runes-api project.
//
// Errors carry a Code, a user-facing Message, an optional Cause and metadata.
// Combat code uses three codes beyond the generic ones:
//
//   - CodeInvalidAction: the player tried an illegal move (not their turn,
//     insufficient mana, no target). Nothing was mutated.
//   - CodeMissingCollaborator: a presentation hook or data table was absent.
//     The engine carried on without it.
//   - CodeInconsistentState: the session was found in a state it should never
//     reach and was forced back to the player's turn.
//
// # Basic Usage
//
//	err := errors.InvalidActionf("not enough mana for %s", skill.Name)
//	err := errors.NotFound("session not found").WithMeta("session_id", id)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save battle record")
//	}
//
// # Error Checking
//
//	if errors.IsInvalidAction(err) {
//	    // show the message, let the player pick again
//	}
//
// # Validation
//
// Config structs validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
package errors
