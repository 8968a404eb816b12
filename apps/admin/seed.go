package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/zyraworkhub/zyra/core/catalog"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
)

var seedCollections = []string{
	catalog.CollectionProjects,
	catalog.CollectionFeedback,
	catalog.CollectionWebinars,
}

// seed validates the reference collection files under src and installs them
// into the data directory. Existing collections are left alone unless force
// is set.
func (cli *commandLine) seed(src string, force bool) error {
	compiler := jsonschema.NewCompiler()

	for _, collection := range seedCollections {
		srcPath := filepath.Join(src, collection+".json")
		raw, err := os.ReadFile(srcPath)
		if os.IsNotExist(err) {
			cli.logger.Warn(fmt.Sprintf("seed: %s not found; skipping", srcPath))
			continue
		} else if err != nil {
			return err
		}

		schemaPath := filepath.Join(cli.conf.WorkDir, "assets", "schemas", collection+".json")
		schema, err := compiler.Compile(schemaPath)
		if err != nil {
			return fmt.Errorf("compiling schema for %s: %w", collection, err)
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", srcPath, err)
		}
		if err = schema.Validate(doc); err != nil {
			return fmt.Errorf("validating %s: %w", srcPath, err)
		}

		if _, err = os.Stat(filepath.Join(cli.store.Dir(), collection+".json")); err == nil && !force {
			cli.logger.Warn(fmt.Sprintf("seed: collection %q already installed; use -force to overwrite", collection))
			continue
		}

		var entries []catalog.Entry
		if err = json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("parsing %s: %w", srcPath, err)
		}
		if err = jsonfile.Write(cli.store, collection, entries); err != nil {
			return err
		}
		cli.logger.Info(fmt.Sprintf("seed: installed %d %s entries", len(entries), collection))
	}
	return nil
}
