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

var _ billingv1connect.PackageServiceHandler = (*PackageService)(nil)

// PackageService manages subscription plans.
type PackageService struct {
	store storage.PackageStore
}

func NewPackageService(store storage.PackageStore) *PackageService {
	return &PackageService{store: store}
}

func (s *PackageService) CreatePackage(ctx context.Context, req *connect.Request[billingv1.CreatePackageRequest]) (*connect.Response[billingv1.CreatePackageResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	pkg := &models.Package{Name: req.Msg.Name, Amount: req.Msg.Amount}
	if err := s.store.CreatePackage(ctx, pkg); err != nil {
		slog.Warn("CreatePackage failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Package created", "package_id", pkg.ID, "name", pkg.Name, "amount", pkg.Amount)
	return connect.NewResponse(&billingv1.CreatePackageResponse{Package: packageToWire(pkg)}), nil
}

func (s *PackageService) ListPackages(ctx context.Context, req *connect.Request[billingv1.ListPackagesRequest]) (*connect.Response[billingv1.ListPackagesResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	pkgs, err := s.store.ListPackages(ctx)
	if err != nil {
		slog.Error("ListPackages failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]billingv1.Package, len(pkgs))
	for i, p := range pkgs {
		out[i] = packageToWire(p)
	}
	return connect.NewResponse(&billingv1.ListPackagesResponse{
		Packages:   paginate(out, req.Msg.Page),
		DataLength: len(out),
	}), nil
}

// UpdatePackage renames or re-prices a package. A name taken by another
// package is AlreadyExists.
func (s *PackageService) UpdatePackage(ctx context.Context, req *connect.Request[billingv1.UpdatePackageRequest]) (*connect.Response[billingv1.UpdatePackageResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	pkg, err := s.store.GetPackage(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	pkg.Name = req.Msg.Name
	pkg.Amount = req.Msg.Amount
	if err := s.store.UpdatePackage(ctx, pkg); err != nil {
		slog.Warn("UpdatePackage failed", "package_id", pkg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Package updated", "package_id", pkg.ID, "name", pkg.Name, "amount", pkg.Amount)
	return connect.NewResponse(&billingv1.UpdatePackageResponse{Package: packageToWire(pkg)}), nil
}

// DeletePackage fails with FailedPrecondition while customers use the package.
func (s *PackageService) DeletePackage(ctx context.Context, req *connect.Request[billingv1.DeletePackageRequest]) (*connect.Response[billingv1.DeletePackageResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeletePackage(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeletePackage failed", "package_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Package deleted", "package_id", req.Msg.ID)
	return connect.NewResponse(&billingv1.DeletePackageResponse{}), nil
}
