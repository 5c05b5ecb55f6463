package command

import (
	"strconv"

	"github.com/DistributedDoge/oss-directory/internal/cli/output"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

func snapshotTable(infos []*snapshot.Info) *output.Table {
	table := &output.Table{}
	table.SetHeaders("SNAPSHOT", "ENTRIES", "BYTES", "CHECKSUM", "PATH")
	for _, info := range infos {
		table.AddRow(
			info.Name,
			strconv.Itoa(info.Entries),
			strconv.FormatInt(info.Size, 10),
			info.Checksum,
			info.Path,
		)
	}
	return table
}
