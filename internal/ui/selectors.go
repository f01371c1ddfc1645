package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
)

// Selector loaders turn reference collections into filter options.
// They fetch one generous page; selector lists are small in practice.

const selectorLimit = 200

func classFilter(client *api.Client, name, label string, withAll bool) func(ctx context.Context) ([]filterDef, error) {
	return func(ctx context.Context) ([]filterDef, error) {
		classes, _, err := client.ListClasses(ctx, api.ListOptions{Page: 1, Limit: selectorLimit})
		if err != nil {
			return nil, err
		}
		def := filterDef{name: name, label: label}
		if withAll {
			def.options = append(def.options, filterOption{value: "", label: "all"})
		}
		for _, class := range classes {
			def.options = append(def.options, filterOption{value: class.ID, label: class.Name})
		}
		return []filterDef{def}, nil
	}
}

func teacherFilter(client *api.Client) func(ctx context.Context) ([]filterDef, error) {
	return func(ctx context.Context) ([]filterDef, error) {
		teachers, err := client.ListTeachersMinimal(ctx)
		if err != nil {
			return nil, err
		}
		def := filterDef{name: "teacherId", label: "teacher"}
		def.options = append(def.options, filterOption{value: "", label: "all"})
		for _, teacher := range teachers {
			def.options = append(def.options, filterOption{value: teacher.ID, label: teacher.Name})
		}
		return []filterDef{def}, nil
	}
}
