package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"horse-registry/internal/platform/httpclient"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// TreeNode es el JSON que devuelve GET /horses/{id}/familytree.
type TreeNode struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"dateOfBirth"`
	Mother      *TreeNode `json:"mother"`
	Father      *TreeNode `json:"father"`
}

// TreeCmd pide el árbol genealógico a una API corriendo y lo imprime indentado.
func TreeCmd() *cobra.Command {
	var (
		apiURL      string
		generations int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tree <horse-id>",
		Short: "Print the family tree of a horse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid horse id %q", args[0])
			}

			client, err := httpclient.NewWithBaseURL(apiURL, timeout)
			if err != nil {
				return err
			}

			tree, err := FetchTree(cmd.Context(), client, id, generations)
			if err != nil {
				return err
			}
			if tree == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty tree)")
				return nil
			}
			RenderTree(cmd.OutOrStdout(), tree)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the horse registry API")
	cmd.Flags().IntVarP(&generations, "generations", "g", 5, "Generations to include (clamped to 0..100 by the API)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "HTTP timeout")
	return cmd
}

func FetchTree(ctx context.Context, client *httpclient.Client, id int64, generations int) (*TreeNode, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path := fmt.Sprintf("/horses/%d/familytree?%s", id, url.Values{
		"generations": []string{strconv.Itoa(generations)},
	}.Encode())

	var tree *TreeNode
	if err := client.DoJSON(ctx, "GET", path, nil, nil, &tree); err != nil {
		if httpclient.IsNotFound(err) {
			return nil, fmt.Errorf("horse %d not found", id)
		}
		return nil, fmt.Errorf("fetch family tree: %w", err)
	}
	return tree, nil
}

// RenderTree escribe un nodo por línea; madres y padres se marcan dam/sire.
func RenderTree(w io.Writer, root *TreeNode) {
	fmt.Fprintf(w, "%s (%s) #%d\n", color.New(color.Bold).Sprint(root.Name), root.DateOfBirth, root.ID)
	renderParents(w, root, "")
}

func renderParents(w io.Writer, n *TreeNode, prefix string) {
	type branch struct {
		label string
		node  *TreeNode
	}
	var branches []branch
	if n.Mother != nil {
		branches = append(branches, branch{color.New(color.FgMagenta).Sprint("dam"), n.Mother})
	}
	if n.Father != nil {
		branches = append(branches, branch{color.New(color.FgCyan).Sprint("sire"), n.Father})
	}

	for i, b := range branches {
		connector, next := "├── ", "│   "
		if i == len(branches)-1 {
			connector, next = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s%s: %s (%s) #%d\n", prefix, connector, b.label, b.node.Name, b.node.DateOfBirth, b.node.ID)
		renderParents(w, b.node, prefix+next)
	}
}
