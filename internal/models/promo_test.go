package models

import (
	"strings"
	"testing"
)

func testPromos() []*Promo {
	return []*Promo{
		{ID: "promo-1", PromoCode: "SAVE50K", PromoDiscountPrice: 50000, MinimumClaimPrice: 200000},
		{ID: "promo-2", PromoCode: "  trimmed  ", PromoDiscountPrice: 10000, MinimumClaimPrice: 0},
	}
}

func TestFindPromoByCode(t *testing.T) {
	promos := testPromos()

	tests := []struct {
		name   string
		code   string
		wantID string
	}{
		{"exact match", "SAVE50K", "promo-1"},
		{"case insensitive", "save50k", "promo-1"},
		{"surrounding whitespace trimmed", "  SAVE50K  ", "promo-1"},
		{"stored code trimmed too", "TRIMMED", "promo-2"},
		{"no match", "NOPE", ""},
		{"empty code", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPromoByCode(promos, tt.code)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("FindPromoByCode(%q) = %v, want nil", tt.code, got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindPromoByCode(%q) = %v, want %q", tt.code, got, tt.wantID)
			}
		})
	}
}

func TestFindPromoByID(t *testing.T) {
	promos := testPromos()

	if got := FindPromoByID(promos, "promo-2"); got == nil || got.PromoDiscountPrice != 10000 {
		t.Errorf("FindPromoByID(promo-2) = %v", got)
	}
	if got := FindPromoByID(promos, ""); got != nil {
		t.Error("empty id must not resolve")
	}
	if got := FindPromoByID(promos, "missing"); got != nil {
		t.Error("missing id must not resolve")
	}
}

func TestPromo_AppliesTo(t *testing.T) {
	promo := Promo{PromoCode: "SAVE50K", PromoDiscountPrice: 50000, MinimumClaimPrice: 200000}

	tests := []struct {
		name     string
		subtotal float64
		want     bool
	}{
		{"above minimum", 500000, true},
		{"exactly minimum", 200000, true},
		{"below minimum", 100000, false},
		{"zero subtotal", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promo.AppliesTo(tt.subtotal); got != tt.want {
				t.Errorf("AppliesTo(%v) = %v, want %v", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestApplyPromo(t *testing.T) {
	promos := []*Promo{
		{ID: "promo-1", PromoCode: "SAVE50K", PromoDiscountPrice: 50000, MinimumClaimPrice: 200000},
	}

	t.Run("applied above minimum", func(t *testing.T) {
		discount, promo, err := ApplyPromo(500000, "SAVE50K", promos)
		if err != nil {
			t.Fatalf("ApplyPromo() error = %v", err)
		}
		if discount != 50000 {
			t.Errorf("discount = %v, want 50000", discount)
		}
		if promo == nil || promo.ID != "promo-1" {
			t.Errorf("promo = %v, want promo-1", promo)
		}
		if total := GrandTotal(500000, discount); total != 450000 {
			t.Errorf("grand total = %v, want 450000", total)
		}
	})

	t.Run("below minimum names the formatted threshold", func(t *testing.T) {
		discount, promo, err := ApplyPromo(100000, "SAVE50K", promos)
		if err == nil {
			t.Fatal("ApplyPromo() expected minimum purchase error")
		}
		if want := "Rp 200.000"; !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not reference %q", err.Error(), want)
		}
		if discount != 0 || promo != nil {
			t.Errorf("promo must not apply below minimum: discount=%v promo=%v", discount, promo)
		}
		if total := GrandTotal(100000, discount); total != 100000 {
			t.Errorf("total changed to %v, want unchanged 100000", total)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		discount, promo, err := ApplyPromo(500000, "NOPE", promos)
		if err != ErrPromoNotFound {
			t.Errorf("err = %v, want ErrPromoNotFound", err)
		}
		if discount != 0 || promo != nil {
			t.Error("unknown code must not grant a discount")
		}
	})

	t.Run("empty code is not an error", func(t *testing.T) {
		discount, promo, err := ApplyPromo(500000, "   ", promos)
		if err != nil || discount != 0 || promo != nil {
			t.Errorf("empty code: discount=%v promo=%v err=%v", discount, promo, err)
		}
	})
}

func TestPromo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		promo   Promo
		wantErr bool
	}{
		{"valid", Promo{Title: "Hemat", PromoCode: "HEMAT", PromoDiscountPrice: 10000, MinimumClaimPrice: 50000}, false},
		{"missing title", Promo{PromoCode: "HEMAT"}, true},
		{"missing code", Promo{Title: "Hemat"}, true},
		{"negative discount", Promo{Title: "Hemat", PromoCode: "HEMAT", PromoDiscountPrice: -1}, true},
		{"negative minimum", Promo{Title: "Hemat", PromoCode: "HEMAT", MinimumClaimPrice: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.promo.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
