package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

func TestUpdatePackage(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	home, err := c.packages.CreatePackage(ctx, connect.NewRequest(&billingv1.CreatePackageRequest{Name: "Home 10Mbps", Amount: 2500}))
	if err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}
	if _, err := c.packages.CreatePackage(ctx, connect.NewRequest(&billingv1.CreatePackageRequest{Name: "Business 50Mbps", Amount: 9000})); err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}

	cust, err := c.accounts.CreateCustomer(ctx, connect.NewRequest(&billingv1.CreateCustomerRequest{
		Customer: billingv1.CustomerInput{Name: "Njeri", Phone1: "0733000000", PackageID: home.Msg.Package.ID},
	}))
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	t.Run("re-price flows to customers", func(t *testing.T) {
		resp, err := c.packages.UpdatePackage(ctx, connect.NewRequest(&billingv1.UpdatePackageRequest{
			ID: home.Msg.Package.ID, Name: "Home 20Mbps", Amount: 3000,
		}))
		if err != nil {
			t.Fatalf("UpdatePackage failed: %v", err)
		}
		if resp.Msg.Package.Name != "Home 20Mbps" || resp.Msg.Package.Amount.String() != "3000" {
			t.Errorf("package = %+v", resp.Msg.Package)
		}

		got, err := c.accounts.GetCustomer(ctx, connect.NewRequest(&billingv1.GetCustomerRequest{ID: cust.Msg.Customer.ID}))
		if err != nil {
			t.Fatalf("GetCustomer failed: %v", err)
		}
		if got.Msg.Customer.PackageName != "Home 20Mbps" || got.Msg.Customer.BillAmount.String() != "3000" {
			t.Errorf("customer package = %s / %s", got.Msg.Customer.PackageName, got.Msg.Customer.BillAmount)
		}
	})

	t.Run("name clash", func(t *testing.T) {
		_, err := c.packages.UpdatePackage(ctx, connect.NewRequest(&billingv1.UpdatePackageRequest{
			ID: home.Msg.Package.ID, Name: "Business 50Mbps", Amount: 3000,
		}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("missing and invalid", func(t *testing.T) {
		_, err := c.packages.UpdatePackage(ctx, connect.NewRequest(&billingv1.UpdatePackageRequest{
			ID: "missing", Name: "Ghost", Amount: 1,
		}))
		assertCode(t, err, connect.CodeNotFound)

		_, err = c.packages.UpdatePackage(ctx, connect.NewRequest(&billingv1.UpdatePackageRequest{
			ID: home.Msg.Package.ID, Name: "Home", Amount: -1,
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("list paged by name", func(t *testing.T) {
		resp, err := c.packages.ListPackages(ctx, connect.NewRequest(&billingv1.ListPackagesRequest{
			Page: billingv1.Page{PageNum: 1, RowsPerPage: 1},
		}))
		if err != nil {
			t.Fatalf("ListPackages failed: %v", err)
		}
		if resp.Msg.DataLength != 2 || len(resp.Msg.Packages) != 1 || resp.Msg.Packages[0].Name != "Home 20Mbps" {
			t.Errorf("page = %+v (of %d)", resp.Msg.Packages, resp.Msg.DataLength)
		}
	})
}
