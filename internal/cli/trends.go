package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/trends/trends_api/internal/api/dto"
	"github.com/trends/trends_api/internal/errlocal"
)

func (a *app) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			healthy, err := a.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			if !healthy {
				return errlocal.NewErrInternal("server is not healthy", cliSystem, nil)
			}
			fmt.Fprintln(a.stdout, "ok")
			return nil
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	var limit, offset int

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List trends, highest score first",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client().ListTrends(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	listCmd.Flags().IntVar(&limit, "limit", 0, "page size (server default when 0)")
	listCmd.Flags().IntVar(&offset, "offset", 0, "number of trends to skip")

	return listCmd
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <trend-id>",
		Short: "Show a trend by id",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTrendID(args[0])
			if err != nil {
				return err
			}
			trend, err := a.client().GetTrend(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(trend)
		},
	}
}

func (a *app) newGetByNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-name <name>",
		Short: "Show a trend by name",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trend, err := a.client().GetTrendByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(trend)
		},
	}
}

func (a *app) newCreateCmd() *cobra.Command {
	var req dto.CreateTrendRequest

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a trend",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			trend, err := a.client().CreateTrend(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(trend)
		},
	}

	createCmd.Flags().StringVarP(&req.Description, "description", "d", "", "trend description")
	createCmd.Flags().Float64Var(&req.Score, "score", 0, "initial score")

	return createCmd
}

func (a *app) newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <trend-id> <score>",
		Short: "Set the score of a trend",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTrendID(args[0])
			if err != nil {
				return err
			}
			score, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errlocal.NewErrBadRequest("invalid score", cliSystem,
					map[string]any{"score": args[1]})
			}
			if err := a.client().UpdateTrendScore(cmd.Context(), id, score); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "trend %s scored %g\n", id, score)
			return nil
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <trend-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a trend",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTrendID(args[0])
			if err != nil {
				return err
			}
			if err := a.client().DeleteTrend(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "trend %s deleted\n", id)
			return nil
		},
	}
}

func (a *app) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json|->",
		Short: "Create trends from a JSON array in one transaction",
		Long: `Reads a JSON array of {"name", "description", "score"} objects and
creates them all at once. Nothing is written if any record is invalid or
its name is already taken. Use "-" to read from stdin.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trends, err := readTrendFile(cmd, args[0])
			if err != nil {
				return err
			}
			resp, err := a.client().ImportTrends(cmd.Context(), trends)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}
}

func (a *app) newPurgeCmd() *cobra.Command {
	var yes bool

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every trend",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errlocal.NewErrBadRequest("refusing to purge without --yes", cliSystem, nil)
			}
			deleted, err := a.client().PurgeTrends(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%d trends deleted\n", deleted)
			return nil
		},
	}

	purgeCmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all trends")

	return purgeCmd
}

func readTrendFile(cmd *cobra.Command, path string) ([]dto.CreateTrendRequest, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, errlocal.NewErrNotFound(fmt.Sprintf("file %q not found", path), cliSystem, nil)
			}
			return nil, errlocal.NewErrInternal("failed to open file", err.Error(),
				map[string]any{"file": path})
		}
		defer f.Close()
		r = f
	}

	var trends []dto.CreateTrendRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&trends); err != nil {
		return nil, errlocal.NewErrBadRequest("invalid trends file", err.Error(),
			map[string]any{"file": path})
	}
	if len(trends) == 0 {
		return nil, errlocal.NewErrBadRequest("no trends to import", cliSystem,
			map[string]any{"file": path})
	}
	return trends, nil
}

func parseTrendID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errlocal.NewErrBadRequest("invalid trend id", cliSystem,
			map[string]any{"trend_id": raw})
	}
	return id, nil
}

func (a *app) print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errlocal.NewErrInternal("failed to encode output", err.Error(), nil)
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}
