package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// Client is a typed caller for the armor service.
// Errors come back as *errors.Error with code, reason and metadata restored.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req interface{}) (*Resp, error) {
	out := new(Resp)
	if err := c.conn.Invoke(ctx, method, req, out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return out, nil
}

func (c *Client) CreateSet(ctx context.Context, req *CreateSetRequest) (*CreateSetResponse, error) {
	return invoke[CreateSetResponse](ctx, c, methodCreateSet, req)
}

func (c *Client) EditSet(ctx context.Context, req *EditSetRequest) (*EditSetResponse, error) {
	return invoke[EditSetResponse](ctx, c, methodEditSet, req)
}

func (c *Client) GetSet(ctx context.Context, req *GetSetRequest) (*GetSetResponse, error) {
	return invoke[GetSetResponse](ctx, c, methodGetSet, req)
}

func (c *Client) ListSets(ctx context.Context, req *ListSetsRequest) (*ListSetsResponse, error) {
	return invoke[ListSetsResponse](ctx, c, methodListSets, req)
}

func (c *Client) DeleteSet(ctx context.Context, req *DeleteSetRequest) (*DeleteSetResponse, error) {
	return invoke[DeleteSetResponse](ctx, c, methodDeleteSet, req)
}

func (c *Client) GetPiece(ctx context.Context, req *GetPieceRequest) (*GetPieceResponse, error) {
	return invoke[GetPieceResponse](ctx, c, methodGetPiece, req)
}
