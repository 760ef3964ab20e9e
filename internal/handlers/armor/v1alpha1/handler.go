// Package v1alpha1 handles the armor grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service builder.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("armor service is required")
	}
	return nil
}

// Handler implements the armor gRPC service
type Handler struct {
	service builder.Service
}

var _ ArmorServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
	}, nil
}

// CreateSet builds and stores a set from catalog pieces
func (h *Handler) CreateSet(ctx context.Context, req *CreateSetRequest) (*CreateSetResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", req.Name, vb)
	errors.ValidateRequired("rank", req.Rank, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rank, err := armor.ParseRank(req.Rank)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	pieces := make(map[armor.PieceType]string, len(req.Pieces))
	for key, name := range req.Pieces {
		pieceType, err := armor.ParsePieceType(key)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		pieces[pieceType] = name
	}

	output, err := h.service.CreateSet(ctx, &builder.CreateSetInput{
		Name:   req.Name,
		Rank:   rank,
		Pieces: pieces,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &CreateSetResponse{Set: convertSetToWire(output.Set)}
	for _, m := range output.Missing {
		resp.Missing = append(resp.Missing, MissingPiece{Type: m.Type.String(), Name: m.Name})
	}
	return resp, nil
}

// EditSet swaps one piece of a stored set
func (h *Handler) EditSet(ctx context.Context, req *EditSetRequest) (*EditSetResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", req.Name, vb)
	errors.ValidateRequired("rank", req.Rank, vb)
	errors.ValidateRequired("type", req.Type, vb)
	errors.ValidateRequired("piece_name", req.PieceName, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rank, err := armor.ParseRank(req.Rank)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	pieceType, err := armor.ParsePieceType(req.Type)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.service.EditSet(ctx, &builder.EditSetInput{
		Name:      req.Name,
		Rank:      rank,
		Type:      pieceType,
		PieceName: req.PieceName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &EditSetResponse{Set: convertSetToWire(output.Set)}
	if output.Previous != nil {
		resp.Previous = output.Previous.Serialize()
	}
	return resp, nil
}

// GetSet returns one stored set
func (h *Handler) GetSet(ctx context.Context, req *GetSetRequest) (*GetSetResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.service.GetSet(ctx, &builder.GetSetInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSetResponse{Set: convertSetToWire(output.Set)}, nil
}

// ListSets returns stored sets
func (h *Handler) ListSets(ctx context.Context, req *ListSetsRequest) (*ListSetsResponse, error) {
	output, err := h.service.ListSets(ctx, &builder.ListSetsInput{Names: req.Names})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListSetsResponse{Sets: convertSetsToWire(output.Sets)}, nil
}

// DeleteSet removes a stored set
func (h *Handler) DeleteSet(ctx context.Context, req *DeleteSetRequest) (*DeleteSetResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.service.DeleteSet(ctx, &builder.DeleteSetInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteSetResponse{Remaining: output.Remaining}, nil
}

// GetPiece looks up one catalog piece
func (h *Handler) GetPiece(ctx context.Context, req *GetPieceRequest) (*GetPieceResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("rank", req.Rank, vb)
	errors.ValidateRequired("type", req.Type, vb)
	errors.ValidateRequired("name", req.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rank, err := armor.ParseRank(req.Rank)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	pieceType, err := armor.ParsePieceType(req.Type)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.service.GetPiece(ctx, &builder.GetPieceInput{
		Rank: rank,
		Type: pieceType,
		Name: req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetPieceResponse{Piece: output.Piece.Serialize()}, nil
}
