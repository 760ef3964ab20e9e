package armor

import (
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// Reasons attached to armor errors
const (
	ReasonInvalidRank          = "INVALID_RANK"
	ReasonInvalidPieceType     = "INVALID_PIECE_TYPE"
	ReasonUnknownRank          = "UNKNOWN_RANK"
	ReasonInvalidSocketProfile = "INVALID_SOCKET_PROFILE"
	ReasonInvalidPieceRecord   = "INVALID_PIECE_RECORD"
	ReasonInvalidSetRecord     = "INVALID_SET_RECORD"
	ReasonSlotTypeMismatch     = "SLOT_TYPE_MISMATCH"
	ReasonReservedSlot         = "RESERVED_SLOT"
)

// Match targets for errors.Is. Never return these directly.
var (
	ErrInvalidRank          = errors.InvalidArgument("invalid rank").WithReason(ReasonInvalidRank)
	ErrInvalidPieceType     = errors.InvalidArgument("invalid piece type").WithReason(ReasonInvalidPieceType)
	ErrUnknownRank          = errors.FailedPrecondition("unknown rank").WithReason(ReasonUnknownRank)
	ErrInvalidSocketProfile = errors.InvalidArgument("invalid socket profile").WithReason(ReasonInvalidSocketProfile)
	ErrInvalidPieceRecord   = errors.DataLoss("invalid piece record").WithReason(ReasonInvalidPieceRecord)
	ErrInvalidSetRecord     = errors.DataLoss("invalid set record").WithReason(ReasonInvalidSetRecord)
	ErrSlotTypeMismatch     = errors.InvalidArgument("slot type mismatch").WithReason(ReasonSlotTypeMismatch)
	ErrReservedSlot         = errors.FailedPrecondition("reserved slot").WithReason(ReasonReservedSlot)
)

func newInvalidRank(value string) error {
	return errors.InvalidArgumentf("could not convert %q to a rank", value).
		WithReason(ReasonInvalidRank).
		WithMeta("value", value)
}

func newInvalidPieceType(value string) error {
	return errors.InvalidArgumentf("could not convert %q to a piece type", value).
		WithReason(ReasonInvalidPieceType).
		WithMeta("value", value)
}

func newUnknownRank(rank Rank, known []Rank) error {
	return errors.FailedPreconditionf("rank %q is not in the catalog, must be one of: %v", rank, known).
		WithReason(ReasonUnknownRank).
		WithMeta("rank", rank.String())
}

func newInvalidSocketProfile(counts []int) error {
	return errors.InvalidArgumentf("sockets must be 4 non-negative counts, got %v", counts).
		WithReason(ReasonInvalidSocketProfile).
		WithMeta("length", len(counts))
}

func newInvalidPieceRecord(cause error, format string, args ...interface{}) error {
	if cause == nil {
		return errors.DataLossf(format, args...).WithReason(ReasonInvalidPieceRecord)
	}
	return errors.WrapWithCodef(cause, errors.CodeDataLoss, format, args...).
		WithReason(ReasonInvalidPieceRecord)
}

func newInvalidSetRecord(cause error, format string, args ...interface{}) error {
	if cause == nil {
		return errors.DataLossf(format, args...).WithReason(ReasonInvalidSetRecord)
	}
	return errors.WrapWithCodef(cause, errors.CodeDataLoss, format, args...).
		WithReason(ReasonInvalidSetRecord)
}
