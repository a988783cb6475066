// Package inventory reads the YAML file listing the endpoints to assess.
package inventory

import (
	"errors"
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/tlsprobe"
)

const DefaultPort = 443

func Parse(filePath string) (tlsprobe.Inventory, error) {
	bs, err := ioutil.ReadFile(filePath)
	if err != nil {
		return tlsprobe.Inventory{}, err
	}

	return ParseBytes(bs)
}

func ParseBytes(bs []byte) (tlsprobe.Inventory, error) {
	var inventory tlsprobe.Inventory

	err := yaml.UnmarshalStrict(bs, &inventory)
	if err != nil {
		return tlsprobe.Inventory{}, errors.New("incorrect yaml format")
	}

	for i := range inventory.Targets {
		if inventory.Targets[i].Port == 0 {
			inventory.Targets[i].Port = DefaultPort
		}
		if inventory.Targets[i].Name == "" {
			inventory.Targets[i].Name = inventory.Targets[i].Host
		}
	}

	err = validate(inventory)
	if err != nil {
		return tlsprobe.Inventory{}, err
	}

	return inventory, nil
}

func validate(inv tlsprobe.Inventory) error {
	if len(inv.Targets) == 0 {
		return errors.New("file is empty")
	}

	for i, target := range inv.Targets {
		if err := target.Validate(); err != nil {
			return fmt.Errorf("target %d: %w", i+1, err)
		}
	}

	return nil
}
