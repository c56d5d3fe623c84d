package cli

import (
	"context"
	"os"
	"strings"

	"github.com/dmitrijs2005/calcfront/internal/client/models"
)

// NewOperation runs the submission form: pick an operation type, enter the
// operands the type requires, submit, and print the server's result. The
// second operand is only asked for once the first one is given, and types
// that take fewer operands skip the prompts entirely.
func (a *App) NewOperation(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	choices := make([]string, 0, len(models.OperationTypes()))
	for _, typ := range models.OperationTypes() {
		choices = append(choices, string(typ))
	}

	raw, err := getSimpleText(a.reader, "Operation ("+strings.Join(choices, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}

	typ := models.OperationType(strings.ToLower(strings.TrimSpace(raw)))
	if !typ.Valid() {
		printlnFn("Unknown operation type:", raw)
		return nil
	}

	var args []float64
	if typ.ArgCount() >= 1 {
		v, err := getNumber(a.reader, "Input 1", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		args = append(args, v)
	}
	if typ.ArgCount() == 2 {
		v, err := getNumber(a.reader, "Input 2", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		args = append(args, v)
	}

	result, err := a.ops.Submit(ctx, typ, args)
	if err != nil {
		printlnFn(errorText(err, "An error occurred. Please try again."))
		return nil
	}

	printlnFn("Result:", result.String())
	if st := a.store.State(); st.Balance != nil {
		printlnFn("Balance:", *st.Balance)
	}
	return nil
}
