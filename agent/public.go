package agent

import (
	"context"
	"fmt"

	"github.com/carole/inventory"
	"github.com/carole/inventory/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small shop and is here primarily to get information about his stock:
			what is running low, what to reorder and in which quantity, how a sale or a delivery
			changes the picture.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStockKeeper returns the expert in charge of reading the inventory
// persisted at path. Prices are reported in the given currency.
func NewStockKeeper(path, currency string) *Expert {

	lib := []Function{stockList(path, currency), reorderList(path, currency)}

	return &Expert{
		Name: "StockKeeper",
		Description: `This is the StockKeeper. He is in charge of reading the user's inventory file.
		Ask him for the list of stocked items, their prices, and which items need a reorder.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a stock keeper in charge of the user's shop inventory.
				You know how to use the Tools to extract the current state of the stock.
				You are part of a team of experts, yours is everything about the inventory. They might
				ask you questions about it, pardon their approximative language and figure out what
				they meant: item names match case-insensitively.

				Use the available tools to get information about the inventory
				  - list of stocked items with prices and stock counts
				  - items below their reorder level, with the quantity to order
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// stockList is the tool returning the whole inventory as a markdown table.
func stockList(path, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "StockList",
			Description: `StockList lists every item in the inventory with its unit price, current stock count and reorder level.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all items in the inventory.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := inventory.LoadStore(path)
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "StockList",
					Response: map[string]any{
						"error": fmt.Sprintf("could not load inventory: %v", err),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "StockList",
				Response: map[string]any{
					"output": renderer.Items("Inventory", store.Items(), currency),
				},
			}
		},
	}
}

// reorderList is the tool returning the restock shopping list.
func reorderList(path, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ReorderList",
			Description: `ReorderList lists the items whose stock fell below their reorder level,
			with the quantity to order to come back to twice that level.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the items needing a reorder.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := inventory.LoadStore(path)
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "ReorderList",
					Response: map[string]any{
						"error": fmt.Sprintf("could not load inventory: %v", err),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "ReorderList",
				Response: map[string]any{
					"output": renderer.Reorders(store.NeedingReorder(), currency),
				},
			}
		},
	}
}
