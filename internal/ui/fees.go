package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newFeesScreen(d deps, fixed map[string]string) screen {
	client := d.client
	cfg := listConfig[api.Fee]{
		screenID: "fees",
		name:     "Fees",
		columns: []column{
			{"Student", 24},
			{"Amount", 10},
			{"Due", 12},
			{"Status", 10},
		},
		cells: func(f api.Fee) []string {
			student := f.StudentName
			if student == "" {
				student = f.StudentID
			}
			return []string{student, fmt.Sprintf("%.2f", f.Amount), f.DueDate, f.Status}
		},
		rowID:    func(f api.Fee) string { return f.ID },
		rowLabel: func(f api.Fee) string { return f.StudentName + " " + f.DueDate },

		searchable: true,
		filters: []filterDef{
			{
				name:  "status",
				label: "status",
				options: []filterOption{
					{value: "", label: "all"},
					{value: "pending", label: "pending"},
					{value: "paid", label: "paid"},
					{value: "overdue", label: "overdue"},
				},
			},
		},

		fetch: func(ctx context.Context, q resource.Query) ([]api.Fee, api.Meta, error) {
			opts := q.Options()
			for name, value := range fixed {
				if opts.Filters == nil {
					opts.Filters = map[string]string{}
				}
				opts.Filters[name] = value
			}
			return client.ListFees(ctx, opts)
		},

		formTitle: "fee",
		formFields: []formField{
			{key: "studentId", label: "Student ID", required: true},
			{key: "amount", label: "Amount", required: true},
			{key: "dueDate", label: "Due date", placeholder: "2026-01-31", required: true},
			{key: "status", label: "Status", placeholder: "pending / paid"},
		},
		formValues: func(f api.Fee) map[string]string {
			return map[string]string{
				"studentId": f.StudentID,
				"amount":    fmt.Sprintf("%.2f", f.Amount),
				"dueDate":   f.DueDate,
				"status":    f.Status,
			}
		},

		create: func(ctx context.Context, values map[string]string) error {
			params, err := feeParams(values)
			if err != nil {
				return err
			}
			_, err = client.CreateFee(ctx, params)
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			params, err := feeParams(values)
			if err != nil {
				return err
			}
			_, err = client.UpdateFee(ctx, id, params)
			return err
		},
		remove: client.DeleteFee,
	}

	// A student's own view is read-only.
	if _, readOnly := fixed["studentId"]; readOnly {
		cfg.create = nil
		cfg.update = nil
		cfg.remove = nil
	}
	return newListScreen(d, cfg)
}

func feeParams(values map[string]string) (api.FeeParams, error) {
	amount, err := strconv.ParseFloat(values["amount"], 64)
	if err != nil {
		return api.FeeParams{}, fmt.Errorf("amount must be a number")
	}
	status := values["status"]
	if status == "overdue" {
		// Overdue is derived server-side from the due date.
		status = "pending"
	}
	return api.FeeParams{
		StudentID: values["studentId"],
		Amount:    amount,
		DueDate:   values["dueDate"],
		Status:    status,
	}, nil
}
