package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

func TestAssetService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	if _, err := c.accounts.CreateCustomer(ctx, connect.NewRequest(&billingv1.CreateCustomerRequest{
		Customer: billingv1.CustomerInput{Name: "Wanjiru", Phone1: "0711000000", IP: "10.0.0.72"},
	})); err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	valid := billingv1.AssetInput{
		Name:      "TP-Link 8 port",
		BelongsTo: ".72",
		Type:      "Switch",
		Location:  "Roysambu pole 4",
		Purpose:   "Distribution",
		Price:     3500,
	}

	created, err := c.assets.CreateAsset(ctx, connect.NewRequest(&billingv1.CreateAssetRequest{Asset: valid}))
	if err != nil {
		t.Fatalf("CreateAsset failed: %v", err)
	}
	if created.Msg.Asset.ID == "" || created.Msg.Asset.Price.String() != "3500" {
		t.Errorf("created = %+v", created.Msg.Asset)
	}

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*billingv1.AssetInput)
		}{
			{"bad suffix", func(a *billingv1.AssetInput) { a.BelongsTo = ".7" }},
			{"not an ip", func(a *billingv1.AssetInput) { a.BelongsTo = "router-3" }},
			{"unknown type", func(a *billingv1.AssetInput) { a.Type = "Router" }},
			{"other without mac", func(a *billingv1.AssetInput) { a.Type = "Other" }},
			{"other with bad mac", func(a *billingv1.AssetInput) { a.Type = "Other"; a.MACAddress = "zz:zz" }},
			{"negative price", func(a *billingv1.AssetInput) { a.Price = -1 }},
			{"no purpose", func(a *billingv1.AssetInput) { a.Purpose = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := valid
				tt.mutate(&in)
				_, err := c.assets.CreateAsset(ctx, connect.NewRequest(&billingv1.CreateAssetRequest{Asset: in}))
				assertCode(t, err, connect.CodeInvalidArgument)
			})
		}
	})

	t.Run("other device with mac and full ip", func(t *testing.T) {
		in := valid
		in.Name = "Ubiquiti LiteBeam"
		in.Type = "Other"
		in.MACAddress = "24:5a:4c:11:22:33"
		in.BelongsTo = "10.0.0.72"
		in.IsForCompany = true
		if _, err := c.assets.CreateAsset(ctx, connect.NewRequest(&billingv1.CreateAssetRequest{Asset: in})); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}
	})

	t.Run("list resolves the customer", func(t *testing.T) {
		resp, err := c.assets.ListAssets(ctx, connect.NewRequest(&billingv1.ListAssetsRequest{}))
		if err != nil {
			t.Fatalf("ListAssets failed: %v", err)
		}
		if resp.Msg.DataLength != 2 {
			t.Fatalf("DataLength = %d, want 2", resp.Msg.DataLength)
		}
		for _, a := range resp.Msg.Assets {
			if a.CustomerName != "Wanjiru" {
				t.Errorf("asset %s CustomerName = %q, want Wanjiru", a.Name, a.CustomerName)
			}
		}
		if resp.Msg.Assets[0].Name != "Ubiquiti LiteBeam" || !resp.Msg.Assets[0].IsForCompany {
			t.Errorf("newest asset = %+v", resp.Msg.Assets[0])
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := c.assets.DeleteAsset(ctx, connect.NewRequest(&billingv1.DeleteAssetRequest{ID: created.Msg.Asset.ID})); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}
		_, err := c.assets.DeleteAsset(ctx, connect.NewRequest(&billingv1.DeleteAssetRequest{ID: created.Msg.Asset.ID}))
		assertCode(t, err, connect.CodeNotFound)
	})
}
