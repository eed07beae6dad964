package main

import (
	"bestiary/internal/config"
	"bestiary/internal/domain"
	"bestiary/internal/version"
	"bestiary/pkg/catalog"
	"bestiary/pkg/forge"
	"bestiary/pkg/logger"
	"bestiary/pkg/registry"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация
	cfg, err := config.Load("bestiary.yaml", os.Args[1:])
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	logger.Log.Info("Starting Bestiary demo...")
	logger.Log.Info(version.String())

	// 2. Прогон
	if err := run(cfg, os.Stdout); err != nil {
		logger.Log.Fatal("Demo failed: ", err)
	}

	logger.Log.Info("Done.")
}

// run проводит всю цепочку: каталог -> билдер/директор -> реестр -> варианты.
// Сводки врагов пишутся в out.
func run(cfg config.Config, out io.Writer) error {
	lib, err := loadLibrary(cfg.CatalogDir)
	if err != nil {
		return err
	}
	theme, err := lib.Lookup(cfg.Theme)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"theme":  theme.Name,
		"themes": lib.Names(),
	}).Info("Catalog ready")

	// 3. Ручная сборка через билдеры
	goblin, err := forge.NewBasicBuilder().
		SetName("Goblin").
		SetHealth(100).SetDamage(15).SetDefense(5).SetSpeed(35).
		SetElement(theme.Element()).
		SetEffects(theme.Effects()).
		SetDropTable(theme.DropTable()).
		SetAIBehavior(theme.AIBehavior()).
		Build()
	if err != nil {
		return fmt.Errorf("build goblin: %w", err)
	}

	fire, err := lib.Lookup("fire")
	if err != nil {
		return err
	}
	dragonBuilder := forge.NewStagedBuilder()
	dragonBuilder.SetCanFly(true).SetBreathAttack(true).SetWingspan(40)
	dragon, err := dragonBuilder.
		SetName("Fire Dragon").
		SetHealth(5000).SetDamage(300).SetDefense(80).SetSpeed(45).
		SetElement(domain.ElementFire).
		SetEffects(fire.Effects()).
		SetDropTable(fire.DropTable()).
		SetAIBehavior(fire.AIBehavior()).
		AddStage(1, 5000).AddStage(2, 2500).AddStage(3, 1250).
		Build()
	if err != nil {
		return fmt.Errorf("build dragon: %w", err)
	}

	section(out, "BUILDER")
	printEntity(out, goblin)
	printEntity(out, dragon)

	// 4. Пресеты директора
	section(out, "DIRECTOR ("+theme.Name+")")
	basic := forge.NewDirector(forge.NewBasicBuilder())
	staged := forge.NewDirector(forge.NewStagedBuilder())

	minion, err := basic.CreateMinion(theme)
	if err != nil {
		return err
	}
	raidBoss, err := staged.CreateRaidBoss(theme)
	if err != nil {
		return err
	}
	printEntity(out, minion)
	printEntity(out, raidBoss)

	// Staged-пресет на простом билдере должен упасть сразу
	if _, err := basic.CreateMiniBoss(theme); err != nil {
		logger.Log.WithError(err).Info("Mini boss rejected by basic builder, as expected")
	}

	// 5. Реестр шаблонов и варианты
	section(out, "REGISTRY")
	reg := registry.New()
	for name, e := range map[string]*forge.Entity{
		"goblin":    goblin,
		"dragon":    dragon,
		"raid-boss": raidBoss,
	} {
		if err := reg.Register(name, e); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Templates (%d): %v\n", reg.Count(), reg.Names())

	for _, tpl := range []string{"goblin", "dragon"} {
		for _, v := range cfg.Variants {
			e, err := reg.InstantiateScaled(tpl, v.Factor)
			if err != nil {
				return fmt.Errorf("variant %s of %s: %w", v.Name, tpl, err)
			}
			fmt.Fprintf(out, "  %s %s (x%g): HP %d | DMG %d\n", v.Name, e.Name(), v.Factor, e.Health(), e.Damage())
		}

		base, err := reg.Instantiate(tpl)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  Template %s untouched: HP %d\n", base.Name(), base.Health())
	}

	return nil
}

func loadLibrary(dir string) (catalog.Library, error) {
	lib := catalog.Builtin()
	if dir == "" {
		return lib, nil
	}
	custom, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	logger.Log.WithField("dir", dir).Infof("Loaded %d custom themes", len(custom))
	return lib.Merge(custom), nil
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n######## %s ########\n", title)
}

func printEntity(out io.Writer, e *forge.Entity) {
	fmt.Fprintln(out, e.Summary())
	fmt.Fprintln(out)
}
