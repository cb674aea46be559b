package storefront_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Sabwear/internal/cart"
	"Sabwear/internal/catalog"
	"Sabwear/internal/checkout"
	"Sabwear/internal/session"
	"Sabwear/internal/storefront"
)

const sessionSecret = "test-session-secret-test-session"

func newStorefrontTS(t *testing.T, httpDeps storefront.HTTPDeps) *httptest.Server {
	t.Helper()

	products := catalog.NewMemStore()

	deps := storefront.Deps{
		Catalog: &catalog.Server{Store: products, Log: zap.NewNop()},
		Cart:    &cart.Server{Store: cart.NewMemStore(products), Log: zap.NewNop()},
		Checkout: &checkout.Server{
			Store:    checkout.NewMemStore(),
			Products: products,
			Regions:  checkout.DefaultRegions(),
			Log:      zap.NewNop(),
		},
		Sessions: session.NewTokenMaker(sessionSecret),
	}

	if httpDeps.Log == nil {
		httpDeps.Log = zap.NewNop()
	}
	if httpDeps.Service == "" {
		httpDeps.Service = "storefront"
	}

	ts := httptest.NewServer(storefront.NewHandler(deps, httpDeps))
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestStorefront_ProductBrowsing(t *testing.T) {
	ts := newStorefrontTS(t, storefront.HTTPDeps{})

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d", resp.StatusCode)
		}

		var ps []catalog.Product
		if err := json.Unmarshal(raw, &ps); err != nil {
			t.Fatalf("decode: %v body=%s", err, string(raw))
		}
		if len(ps) != 12 {
			t.Fatalf("len=%d want 12", len(ps))
		}
		if ps[0].ID != "1" || ps[11].ID != "12" {
			t.Fatalf("seed order broken: first=%s last=%s", ps[0].ID, ps[11].ID)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/category/dresses", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("category status=%d", resp.StatusCode)
		}
		var ps []catalog.Product
		if err := json.Unmarshal(raw, &ps); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, p := range ps {
			if p.Category != "dresses" {
				t.Fatalf("category=%q", p.Category)
			}
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/category/nonexistent", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("unknown category status=%d", resp.StatusCode)
		}
		var ps []catalog.Product
		if err := json.Unmarshal(raw, &ps); err != nil {
			t.Fatalf("decode: %v body=%s", err, string(raw))
		}
		if len(ps) != 0 {
			t.Fatalf("unknown category returned %d products", len(ps))
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/search?q=silk", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("search status=%d", resp.StatusCode)
		}
		var ps []catalog.Product
		if err := json.Unmarshal(raw, &ps); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(ps) != 2 {
			t.Fatalf("search silk len=%d want 2 body=%s", len(ps), string(raw))
		}
	}

	{
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/products/search", nil, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("missing q status=%d want 400", resp.StatusCode)
		}

		resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/products/search?q=%20%20", nil, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("blank q status=%d want 400", resp.StatusCode)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/7", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get status=%d", resp.StatusCode)
		}
		var p catalog.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Name != "Premium Leather Jacket" {
			t.Fatalf("name=%q", p.Name)
		}

		resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/products/999", nil, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("unknown product status=%d want 404", resp.StatusCode)
		}
	}
}

func TestStorefront_CartLifecycle(t *testing.T) {
	ts := newStorefrontTS(t, storefront.HTTPDeps{})
	hdr := map[string]string{session.HeaderName: "sess-e2e"}

	var itemID string
	{
		resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{
			"productId": "1",
			"quantity":  2,
		}, hdr)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("add status=%d body=%s", resp.StatusCode, string(raw))
		}
		var it cart.Item
		if err := json.Unmarshal(raw, &it); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if it.Quantity != 2 {
			t.Fatalf("quantity=%d want 2", it.Quantity)
		}
		itemID = it.ID
	}

	{
		resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{
			"productId": "1",
			"quantity":  2,
		}, hdr)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("merge status=%d", resp.StatusCode)
		}
		var it cart.Item
		if err := json.Unmarshal(raw, &it); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if it.ID != itemID {
			t.Fatalf("merge created a second item: %s != %s", it.ID, itemID)
		}
		if it.Quantity != 4 {
			t.Fatalf("merged quantity=%d want 4", it.Quantity)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, hdr)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d", resp.StatusCode)
		}
		var lines []cart.Line
		if err := json.Unmarshal(raw, &lines); err != nil {
			t.Fatalf("decode: %v body=%s", err, string(raw))
		}
		if len(lines) != 1 {
			t.Fatalf("lines=%d want 1", len(lines))
		}
		if lines[0].ProductID != "1" || lines[0].Quantity != 4 {
			t.Fatalf("line=%+v", lines[0])
		}
		if lines[0].Product.Name != "Elegant Evening Dress" {
			t.Fatalf("joined product=%q", lines[0].Product.Name)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodPatch, ts.URL+"/api/cart/"+itemID, map[string]any{
			"quantity": 5,
		}, hdr)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("patch status=%d body=%s", resp.StatusCode, string(raw))
		}
		var it cart.Item
		if err := json.Unmarshal(raw, &it); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if it.Quantity != 5 {
			t.Fatalf("quantity=%d want 5 (absolute set)", it.Quantity)
		}
	}

	{
		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/cart", nil, hdr)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("clear status=%d", resp.StatusCode)
		}

		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, hdr)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d", resp.StatusCode)
		}
		var lines []cart.Line
		if err := json.Unmarshal(raw, &lines); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("cart not empty after clear: %d", len(lines))
		}
	}
}

func TestStorefront_SessionIsolation(t *testing.T) {
	ts := newStorefrontTS(t, storefront.HTTPDeps{})

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": "3"},
		map[string]string{session.HeaderName: "sess-a"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status=%d", resp.StatusCode)
	}

	for _, sid := range []string{"sess-b", ""} {
		hdr := map[string]string{}
		if sid != "" {
			hdr[session.HeaderName] = sid
		}
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, hdr)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d", resp.StatusCode)
		}
		var lines []cart.Line
		if err := json.Unmarshal(raw, &lines); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("session %q sees foreign cart (%d lines)", sid, len(lines))
		}
	}
}

func TestStorefront_SignedSessionCookie(t *testing.T) {
	ts := newStorefrontTS(t, storefront.HTTPDeps{})

	tm := session.NewTokenMaker(sessionSecret)
	tok, err := tm.New("sess-cookie", time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	withCookie := func(value string) map[string]string {
		return map[string]string{"Cookie": session.CookieName + "=" + value}
	}

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": "5"}, withCookie(tok))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status=%d", resp.StatusCode)
	}

	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, withCookie(tok))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d", resp.StatusCode)
	}
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines=%d want 1", len(lines))
	}

	// A forged cookie lands on the shared anonymous cart, not sess-cookie's.
	forged, err := session.NewTokenMaker("attacker-controlled-secret!!").New("sess-cookie", time.Hour)
	if err != nil {
		t.Fatalf("mint forged token: %v", err)
	}
	resp, raw = doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, withCookie(forged))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &lines); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("forged cookie reached a real cart (%d lines)", len(lines))
	}
}

func TestStorefront_CheckoutFlow(t *testing.T) {
	ts := newStorefrontTS(t, storefront.HTTPDeps{})
	hdr := map[string]string{session.HeaderName: "sess-buyer"}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/checkout/wilayas", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("wilayas status=%d", resp.StatusCode)
		}
		var ws []checkout.Wilaya
		if err := json.Unmarshal(raw, &ws); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(ws) == 0 {
			t.Fatal("no wilayas")
		}
	}

	var created checkout.Order
	{
		resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/checkout", map[string]any{
			"firstName":    "Yacine",
			"lastName":     "Meziane",
			"phone":        "0661234567",
			"wilayaId":     "31",
			"commune":      "Oran",
			"address":      "5 Boulevard de la Soummam",
			"productId":    "8",
			"selectedSize": "L",
			"quantity":     1,
		}, hdr)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("submit status=%d body=%s", resp.StatusCode, string(raw))
		}
		if err := json.Unmarshal(raw, &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.Total != "799.99" {
			t.Fatalf("total=%s", created.Total)
		}
		if created.Status != checkout.StatusConfirmed {
			t.Fatalf("status=%s", created.Status)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/orders/"+created.ID, nil, hdr)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get order status=%d body=%s", resp.StatusCode, string(raw))
		}
		var got checkout.Order
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != created.ID || got.Commune != "Oran" {
			t.Fatalf("order=%+v", got)
		}
	}
}

func TestStorefront_HealthAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ts := newStorefrontTS(t, storefront.HTTPDeps{
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   "scrape-token",
	})

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, raw := doJSON(t, http.MethodGet, ts.URL+path, nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d body=%s", path, resp.StatusCode, string(raw))
		}
	}

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/metrics", nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unauthenticated metrics status=%d want 403", resp.StatusCode)
	}

	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/metrics", nil, map[string]string{
		"Authorization": "Bearer scrape-token",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status=%d body=%s", resp.StatusCode, string(raw))
	}
}
