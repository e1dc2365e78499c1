package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
)

func printAvailability(w io.Writer, res *dto.ProjectAvailabilityResponse) {
	fmt.Fprintf(w, "Proyecto #%d  %s\n\n", res.ProjectID, res.ProjectName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CÓDIGO\tÍTEM\tREQUERIDO\tDISPONIBLE\tFALTANTE\tESTADO\t")
	for _, it := range res.Items {
		status := "OK"
		if !it.IsAvailable {
			status = "FALTA"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t\n",
			it.ItemCode, it.ItemName, it.RequiredQuantity, it.AvailableStock, it.Shortfall, status)
	}
	tw.Flush()

	if res.AllItemsAvailable {
		fmt.Fprintln(w, "\nTodos los componentes están disponibles.")
		return
	}
	missing := 0
	for _, it := range res.Items {
		if !it.IsAvailable {
			missing++
		}
	}
	fmt.Fprintf(w, "\nFaltan componentes: %d de %d ítems sin stock suficiente.\n", missing, len(res.Items))
}

func printItems(w io.Writer, items []dto.ItemResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tNOMBRE\tSTOCK\tMÍNIMO\tUBICACIÓN")
	for _, it := range items {
		low := ""
		if it.LowStock {
			low = " (bajo)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d%s\t%d\t%s\n", it.ID, it.ItemCode, it.ItemName, it.CurrentStock, low, it.MinStock, it.Location)
	}
	tw.Flush()
}
