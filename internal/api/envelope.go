package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Meta is the pagination block every list operation returns, regardless
// of how the server shaped it on the wire.
type Meta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
	Limit      int `json:"limit"`
}

// The server's list envelopes are not uniform: some endpoints return
// {data: [...], meta: {...}}, some nest a second envelope under data,
// some inline the pagination fields beside data, and a few return the
// bare array. decodeList accepts all of them so callers never guess
// shapes.
type listEnvelope struct {
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta"`

	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
	Limit      int `json:"limit"`
}

func decodeList[E any](payload []byte) ([]E, Meta, error) {
	raw := bytes.TrimSpace(payload)
	if len(raw) == 0 {
		return nil, Meta{}, fmt.Errorf("decode list: empty response")
	}

	if raw[0] == '[' {
		rows, err := decodeRows[E](raw)
		if err != nil {
			return nil, Meta{}, err
		}
		return rows, syntheticMeta(len(rows)), nil
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, Meta{}, fmt.Errorf("decode list envelope: %w", err)
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, env.meta(0), nil
	}

	// data may itself be a second envelope.
	if data[0] == '{' {
		var inner listEnvelope
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, Meta{}, fmt.Errorf("decode nested list envelope: %w", err)
		}
		rows, err := decodeRows[E](inner.Data)
		if err != nil {
			return nil, Meta{}, err
		}
		meta := inner.meta(len(rows))
		if meta == syntheticMeta(len(rows)) {
			meta = env.meta(len(rows))
		}
		return rows, meta, nil
	}

	rows, err := decodeRows[E](data)
	if err != nil {
		return nil, Meta{}, err
	}
	return rows, env.meta(len(rows)), nil
}

func decodeRows[E any](data json.RawMessage) ([]E, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var rows []E
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, fmt.Errorf("decode list rows: %w", err)
	}
	return rows, nil
}

func (e listEnvelope) meta(rowCount int) Meta {
	if e.Meta != nil {
		return normalizeMeta(*e.Meta, rowCount)
	}
	if e.Page > 0 || e.Total > 0 || e.TotalPages > 0 || e.Limit > 0 {
		return normalizeMeta(Meta{
			Page:       e.Page,
			TotalPages: e.TotalPages,
			Total:      e.Total,
			Limit:      e.Limit,
		}, rowCount)
	}
	return syntheticMeta(rowCount)
}

func normalizeMeta(meta Meta, rowCount int) Meta {
	if meta.Page <= 0 {
		meta.Page = 1
	}
	if meta.Total <= 0 && rowCount > 0 {
		meta.Total = rowCount
	}
	if meta.Limit <= 0 {
		meta.Limit = rowCount
	}
	if meta.TotalPages <= 0 {
		if meta.Limit > 0 && meta.Total > 0 {
			meta.TotalPages = (meta.Total + meta.Limit - 1) / meta.Limit
		} else {
			meta.TotalPages = 1
		}
	}
	return meta
}

func syntheticMeta(rowCount int) Meta {
	return Meta{Page: 1, TotalPages: 1, Total: rowCount, Limit: rowCount}
}

// Single-entity responses come back either bare or wrapped in {data: {...}}.
func decodeEntity[E any](payload []byte) (E, error) {
	var zero E
	raw := bytes.TrimSpace(payload)
	if len(raw) == 0 {
		return zero, fmt.Errorf("decode entity: empty response")
	}

	if raw[0] == '{' {
		var probe struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil {
			inner := bytes.TrimSpace(probe.Data)
			if len(inner) > 0 && !bytes.Equal(inner, []byte("null")) {
				raw = inner
			}
		}
	}

	var entity E
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, fmt.Errorf("decode entity: %w", err)
	}
	return entity, nil
}
