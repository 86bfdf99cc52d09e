package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/errors"
)

const notFoundMessage = "Producto no encontrado"

// skuArg reads the sku from -sku or the first positional argument.
func skuArg(fs *flag.FlagSet, sku string) (string, error) {
	if sku == "" && fs.NArg() > 0 {
		sku = fs.Arg(0)
	}
	if sku == "" {
		return "", errors.New("missing sku")
	}

	return sku, nil
}

func (r *Runner) handleShow(ctx context.Context, args []string) error {
	fs := r.newFlagSet("show")
	skuFlag := fs.String("sku", "", "Product sku, e.g. woz-sku-0001")
	link := fs.String("link", "", "Share link of the product, instead of -sku")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *link != "" {
		parsed, err := r.detail.ParseShareLink(*link)
		if err != nil {
			return err
		}
		*skuFlag = parsed
	}
	sku, err := skuArg(fs, *skuFlag)
	if err != nil {
		return err
	}

	detail, err := r.detail.ResolveBySku(ctx, sku)
	if errors.Is(err, domainerrors.ErrProductNotFound) {
		fmt.Fprintln(r.out, notFoundMessage)

		return nil
	}
	if err != nil {
		return err
	}

	r.printDetail(detail)

	return nil
}

func (r *Runner) handleCheckout(ctx context.Context, args []string) error {
	fs := r.newFlagSet("checkout")
	skuFlag := fs.String("sku", "", "Product sku")
	if err := fs.Parse(args); err != nil {
		return err
	}
	sku, err := skuArg(fs, *skuFlag)
	if err != nil {
		return err
	}

	summary, err := r.detail.Checkout(ctx, sku)
	if errors.Is(err, domainerrors.ErrProductNotFound) {
		fmt.Fprintln(r.out, notFoundMessage)
		fmt.Fprintf(r.out, "Total: %s\n", entity.FormatPrice(0))

		return nil
	}
	if err != nil {
		return err
	}

	r.printCheckout(summary)

	return nil
}

func (r *Runner) handleQR(ctx context.Context, args []string) error {
	fs := r.newFlagSet("qr")
	skuFlag := fs.String("sku", "", "Product sku")
	out := fs.String("out", "", "PNG output path (default <sku>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	sku, err := skuArg(fs, *skuFlag)
	if err != nil {
		return err
	}

	link, png, err := r.detail.ShareQR(ctx, sku)
	if errors.Is(err, domainerrors.ErrProductNotFound) {
		fmt.Fprintln(r.out, notFoundMessage)

		return nil
	}
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = sku + ".png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errors.Wrap(err, "write qr code")
	}

	fmt.Fprintf(r.out, "Enlace: %s\n", link)
	fmt.Fprintf(r.out, "QR: %s\n", path)

	return nil
}
