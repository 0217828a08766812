// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rollclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/voter-roll/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestFetchMetadata(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "getMetadata" {
			t.Errorf("action = %q", got)
		}
		json.NewEncoder(w).Encode(models.MetadataResponse{
			Success:  true,
			Booths:   []string{"2", "10"},
			HouseMap: map[string][]string{"2": {"1", "5"}},
		})
	})

	meta, err := client.FetchMetadata(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.Booths) != 2 || meta.Booths[0] != "2" {
		t.Errorf("booths = %v", meta.Booths)
	}
	if len(meta.HouseMap["2"]) != 2 {
		t.Errorf("houseMap = %v", meta.HouseMap)
	}
}

func TestSearch_SendsCompositeKey(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("booth") != "12" || q.Get("house") != "5" || q.Get("ward") != "3" {
			t.Errorf("params = %v", q)
		}
		json.NewEncoder(w).Encode(models.SearchResponse{
			Success: true,
			Data:    []models.VoterRecord{{Booth: "12", VoterNo: "1"}},
		})
	})

	records, err := client.Search(context.Background(), "12", "3", "5")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].VoterNo != "1" {
		t.Errorf("records = %v", records)
	}
}

func TestSearch_EmptyResultIsSuccess(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.SearchResponse{Success: true, Data: []models.VoterRecord{}})
	})

	records, err := client.Search(context.Background(), "12", "", "5")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v", records)
	}
}

func TestSearchByName_EmptyQuerySkipsNetwork(t *testing.T) {
	calls := 0
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	records, err := client.SearchByName(context.Background(), "   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 || calls != 0 {
		t.Errorf("empty query contacted the store (%d calls)", calls)
	}
}

func TestSave_ReadsResponseBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.SaveRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Action != "save" || len(req.Data) != 2 {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(models.SaveResponse{Success: true, Message: "Saved successfully"})
	})

	msg, err := client.Save(context.Background(), []models.VoterRecord{
		{Booth: "12", VoterNo: "1"}, {Booth: "12", VoterNo: "2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Saved successfully" {
		t.Errorf("message = %q", msg)
	}
}

func TestSave_RemoteFailureSurfacesMessageVerbatim(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SaveResponse{Success: false, Message: "aadhar must be empty or 12 digits"})
	})

	_, err := client.Save(context.Background(), []models.VoterRecord{{Booth: "1", VoterNo: "1"}})

	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RemoteError", err)
	}
	if rerr.Message != "aadhar must be empty or 12 digits" {
		t.Errorf("message = %q", rerr.Message)
	}
}

func TestDelete(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.DeleteRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Action != "delete" || req.Booth != "12" || req.VoterNo != "1" || req.Reason != "moved" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(models.DeleteResponse{Success: true, Message: "Deleted and archived"})
	})

	msg, err := client.Delete(context.Background(), "12", "1", "moved")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Deleted and archived" {
		t.Errorf("message = %q", msg)
	}
}

func TestConnectivityFailures(t *testing.T) {
	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1/exec", nil)
		_, err := client.Search(context.Background(), "12", "", "5")
		if !errors.Is(err, ErrConnectivity) {
			t.Errorf("err = %v, want ErrConnectivity", err)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		})
		_, err := client.FetchMetadata(context.Background())
		if !errors.Is(err, ErrConnectivity) {
			t.Errorf("err = %v, want ErrConnectivity", err)
		}
	})

	t.Run("non-2xx without body", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := client.Save(context.Background(), []models.VoterRecord{{Booth: "1", VoterNo: "1"}})
		if !errors.Is(err, ErrConnectivity) {
			t.Errorf("err = %v, want ErrConnectivity", err)
		}
	})
}

func TestCheckDuplicateAadhar_Degrades(t *testing.T) {
	t.Run("match found", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("aadhar") != "123456789012" || q.Get("voterNo") != "7" {
				t.Errorf("params = %v", q)
			}
			json.NewEncoder(w).Encode(models.DuplicateCheckResponse{
				IsDuplicate: true,
				Member:      &models.MemberRef{Booth: "9", VoterNo: "3", Name: "Shyam"},
			})
		})

		resp := client.CheckDuplicateAadhar(context.Background(), "123456789012", "7")
		if !resp.IsDuplicate || resp.Member == nil || resp.Member.Name != "Shyam" {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("server error degrades to no duplicate", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		resp := client.CheckDuplicateAadhar(context.Background(), "123456789012", "7")
		if resp.IsDuplicate {
			t.Errorf("degraded check reported a duplicate")
		}
	})

	t.Run("unreachable degrades to no duplicate", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1/exec", nil)
		resp := client.CheckDuplicateAadhar(context.Background(), "123456789012", "7")
		if resp.IsDuplicate {
			t.Errorf("degraded check reported a duplicate")
		}
	})
}
