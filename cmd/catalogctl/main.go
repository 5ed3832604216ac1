// catalogctl — служебная утилита для работы с деревом контента:
// проверка разбора и выгрузка стартового набора данных.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsauctions/catalog-backend/internal/repository/files"
	"github.com/fsauctions/catalog-backend/internal/repository/static"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Утилита обслуживания контента каталога",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newValidateCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Проверяет, что дерево контента разбирается целиком",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report := files.NewRepo(contentDir, logger.NewLogger())

			fmt.Printf("auctions:   %d\n", report.Auctions)
			fmt.Printf("products:   %d\n", report.Products)
			fmt.Printf("categories: %d\n", report.Categories)
			fmt.Printf("settings:   %v\n", report.SettingsLoaded)

			if len(report.Skipped) > 0 {
				for _, path := range report.Skipped {
					fmt.Printf("skipped: %s\n", path)
				}
				return fmt.Errorf("%d content files failed to parse", len(report.Skipped))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "content", "каталог с деревом контента")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Выгружает встроенный стартовый набор данных в дерево контента",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), contentDir)
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "content", "каталог назначения")
	return cmd
}

func seed(ctx context.Context, dir string) error {
	repo := static.NewRepo()

	auctions, err := repo.Auctions(ctx)
	if err != nil {
		return err
	}
	for i := range auctions {
		data, err := files.EncodeAuction(&auctions[i])
		if err != nil {
			return err
		}
		if err := writeContentFile(dir, "auctions", auctions[i].ID, data); err != nil {
			return err
		}
	}

	products, err := repo.Products(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		data, err := files.EncodeProduct(&products[i])
		if err != nil {
			return err
		}
		if err := writeContentFile(dir, "products", products[i].ID, data); err != nil {
			return err
		}
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		return err
	}
	for i := range categories {
		data, err := files.EncodeCategory(&categories[i])
		if err != nil {
			return err
		}
		// имя файла категории — слаг, идентификатор восстановится при чтении
		if err := writeContentFile(dir, "categories", categories[i].Slug, data); err != nil {
			return err
		}
	}

	settings, err := repo.Settings(ctx)
	if err != nil {
		return err
	}
	if settings != nil {
		data, err := files.EncodeSettings(settings)
		if err != nil {
			return err
		}
		if err := writeContentFile(dir, "settings", "site", data); err != nil {
			return err
		}
	}

	fmt.Printf(
		"seeded %s: %d auctions, %d products, %d categories\n",
		dir, len(auctions), len(products), len(categories),
	)

	return nil
}

func writeContentFile(dir, sub, name string, data []byte) error {
	target := filepath.Join(dir, sub)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(target, name+".json"), append(data, '\n'), 0o644)
}
