package api

import "context"

// FeeParams are the writable fee fields. Status transitions beyond
// these values (overdue) are computed server-side.
type FeeParams struct {
	StudentID string  `json:"studentId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	DueDate   string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status    string  `json:"status" validate:"omitempty,oneof=pending paid"`
}

// ListFees pages through fee records.
func (c *Client) ListFees(ctx context.Context, opts ListOptions) ([]Fee, Meta, error) {
	payload, err := c.get(ctx, "/fees", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Fee](payload)
}

// CreateFee assigns a fee to a student.
func (c *Client) CreateFee(ctx context.Context, params FeeParams) (Fee, error) {
	if err := checkParams(params); err != nil {
		return Fee{}, err
	}
	payload, err := c.post(ctx, "/fees", params)
	if err != nil {
		return Fee{}, err
	}
	return decodeEntity[Fee](payload)
}

// UpdateFee replaces a fee's writable fields.
func (c *Client) UpdateFee(ctx context.Context, id string, params FeeParams) (Fee, error) {
	if err := requireID(id); err != nil {
		return Fee{}, err
	}
	if err := checkParams(params); err != nil {
		return Fee{}, err
	}
	payload, err := c.put(ctx, "/fees/"+id, params)
	if err != nil {
		return Fee{}, err
	}
	return decodeEntity[Fee](payload)
}

// DeleteFee removes a fee record.
func (c *Client) DeleteFee(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/fees/"+id)
}
