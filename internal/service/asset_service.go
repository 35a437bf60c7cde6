package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

var _ billingv1connect.AssetServiceHandler = (*AssetService)(nil)

// AssetService tracks network equipment deployed for customers.
type AssetService struct {
	store storage.AssetStore
}

func NewAssetService(store storage.AssetStore) *AssetService {
	return &AssetService{store: store}
}

// CreateAsset stores a switch or other device. Devices of type Other carry
// a MAC address.
func (s *AssetService) CreateAsset(ctx context.Context, req *connect.Request[billingv1.CreateAssetRequest]) (*connect.Response[billingv1.CreateAssetResponse], error) {
	in := req.Msg.Asset
	if err := validateRequest(&in); err != nil {
		return nil, err
	}
	if in.MACAddress != "" {
		if err := validate.Var(in.MACAddress, "mac"); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	asset := &models.Asset{
		Name:         in.Name,
		BelongsTo:    in.BelongsTo,
		Type:         in.Type,
		MACAddress:   in.MACAddress,
		Location:     in.Location,
		Purpose:      in.Purpose,
		Price:        in.Price,
		IsForCompany: in.IsForCompany,
	}
	if err := s.store.CreateAsset(ctx, asset); err != nil {
		slog.Error("CreateAsset failed", "name", in.Name, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Asset created", "asset_id", asset.ID, "type", asset.Type, "belongs_to", asset.BelongsTo)
	return connect.NewResponse(&billingv1.CreateAssetResponse{Asset: assetToWire(asset)}), nil
}

// ListAssets returns assets newest first, each with the name of the
// customer it belongs to when one matches.
func (s *AssetService) ListAssets(ctx context.Context, req *connect.Request[billingv1.ListAssetsRequest]) (*connect.Response[billingv1.ListAssetsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	assets, err := s.store.ListAssets(ctx)
	if err != nil {
		slog.Error("ListAssets failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]billingv1.Asset, len(assets))
	for i, a := range assets {
		out[i] = assetToWire(a)
	}
	return connect.NewResponse(&billingv1.ListAssetsResponse{
		Assets:     paginate(out, req.Msg.Page),
		DataLength: len(out),
	}), nil
}

func (s *AssetService) DeleteAsset(ctx context.Context, req *connect.Request[billingv1.DeleteAssetRequest]) (*connect.Response[billingv1.DeleteAssetResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteAsset(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteAsset failed", "asset_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Asset deleted", "asset_id", req.Msg.ID)
	return connect.NewResponse(&billingv1.DeleteAssetResponse{}), nil
}
