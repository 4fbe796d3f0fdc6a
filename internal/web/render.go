package web

import "lendledger/internal/domain"

// Wire shapes. The engine's snapshot types stay tag-free; the API owns its
// own field names.

type memberJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Credits      int      `json:"credits"`
	CreationDay  int      `json:"creation_day"`
	OwnedItemIDs []string `json:"owned_item_ids"`
}

func renderMember(m domain.Member) memberJSON {
	return memberJSON{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Credits:      m.Credits,
		CreationDay:  m.CreationDay,
		OwnedItemIDs: m.OwnedItemIDs,
	}
}

func renderMembers(members []domain.Member) []memberJSON {
	out := make([]memberJSON, 0, len(members))
	for _, m := range members {
		out = append(out, renderMember(m))
	}
	return out
}

type itemJSON struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CostPerDay  int    `json:"cost_per_day"`
	CreationDay int    `json:"creation_day"`
}

func renderItem(i domain.Item) itemJSON {
	return itemJSON{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Category:    string(i.Category),
		Name:        i.Name,
		Description: i.Description,
		CostPerDay:  i.CostPerDay,
		CreationDay: i.CreationDay,
	}
}

func renderItems(items []domain.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, i := range items {
		out = append(out, renderItem(i))
	}
	return out
}

type contractJSON struct {
	ID           string `json:"id"`
	ItemName     string `json:"item_name"`
	BorrowerName string `json:"borrower_name"`
	StartDay     int    `json:"start_day"`
	EndDay       int    `json:"end_day"`
	Status       string `json:"status"`
}

func renderContract(v domain.ContractView) contractJSON {
	return contractJSON{
		ID:           v.ID,
		ItemName:     v.ItemName,
		BorrowerName: v.BorrowerName,
		StartDay:     v.StartDay,
		EndDay:       v.EndDay,
		Status:       string(v.Status),
	}
}

func renderContracts(views []domain.ContractView) []contractJSON {
	out := make([]contractJSON, 0, len(views))
	for _, v := range views {
		out = append(out, renderContract(v))
	}
	return out
}
