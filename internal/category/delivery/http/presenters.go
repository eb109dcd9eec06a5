package http

import "taskmate/internal/category"

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=30"`
	Icon  string `json:"icon"  binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (r createReq) toInput() category.CreateCategoryInput {
	return category.CreateCategoryInput{
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
}

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"required,min=1,max=30"`
	Icon  string `json:"icon"  binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (r updateReq) toInput() category.UpdateCategoryInput {
	return category.UpdateCategoryInput{
		ID:    r.ID,
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func newCategoryResp(c category.Category) categoryResp {
	return categoryResp{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
}

func newListResp(categories []category.Category) listResp {
	out := make([]categoryResp, len(categories))
	for i, c := range categories {
		out[i] = newCategoryResp(c)
	}
	return listResp{Categories: out}
}
