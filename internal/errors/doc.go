// Package errors provides a comprehensive error handling solution for the armor-builder project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Seamless gRPC integration with bidirectional conversion
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("armor set not found")
//	err := errors.InvalidArgumentf("invalid socket size: %d", size)
//
// Adding metadata:
//
//	err := errors.NotFound("armor set not found").
//	    WithMeta("set_name", name).
//	    WithMeta("rank", rank)
//
// Wrapping errors:
//
//	if _, err := repo.LoadAll(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load armor sets")
//	}
//
// Changing error semantics:
//
//	if err := db.Query(); err != nil {
//	    if isNotFound(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "armor set not found")
//	    }
//	    return errors.Wrap(err, "database error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Domain reasons narrow a code; HasReason searches the whole chain:
//
//	err := errors.InvalidArgument("invalid rank").WithReason("INVALID_RANK")
//	errors.HasReason(wrapped, "INVALID_RANK") // true
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateEnum("rank", input.Rank, ranks, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Converting to gRPC:
//
//	func (h *Handler) GetSet(ctx context.Context, req *GetSetRequest) (*GetSetResponse, error) {
//	    out, err := h.service.GetSet(ctx, &armor.GetSetInput{Name: req.Name})
//	    if err != nil {
//	        return nil, errors.ToGRPCError(err)
//	    }
//	    return toGetSetResponse(out), nil
//	}
//
// Converting from gRPC:
//
//	resp, err := client.GetSet(ctx, req)
//	if err != nil {
//	    return nil, errors.FromGRPCError(err)
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap database errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - PermissionDenied: Insufficient permissions
//   - Internal: Internal server error
//   - Unavailable: Service temporarily unavailable
//   - Unauthenticated: Authentication required
//   - ResourceExhausted: Rate limit or quota exceeded
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation aborted
//   - OutOfRange: Value out of valid range
//   - Unimplemented: Feature not implemented
//   - DataLoss: Unrecoverable data loss
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
