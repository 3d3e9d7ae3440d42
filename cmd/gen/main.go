// Command gen writes typed gorm query helpers for the persistence models.
package main

import (
	"flag"

	"wastetrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory of the generated query package")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.AccountModel{},
		model.ReportModel{},
		model.ScheduleModel{},
		model.TruckStatusModel{},
		model.CollectionStatusModel{},
		model.NotificationModel{},
	)

	g.Execute()
}
