package remote

import (
	"fmt"
	"strings"

	"dlab/dataset"
	"dlab/npy"
)

// Methods returns the names of every method the server exposes.
func (c *Client) Methods() ([]string, error) {
	var methods []string
	if err := c.call("system.listMethods", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// Version returns the version of the running application.
func (c *Client) Version() (string, error) {
	var version string
	if err := c.call("get_version", nil, &version); err != nil {
		return "", err
	}
	return version, nil
}

// CloseApplication asks the application to shut down.
func (c *Client) CloseApplication() error {
	return c.call("close_application", nil, nil)
}

// SwitchToPanel activates a panel ("signal", "image", or "macro").
func (c *Client) SwitchToPanel(panel string) error {
	return c.call("switch_to_panel", []any{panel}, nil)
}

// ResetAll clears all application data.
func (c *Client) ResetAll() error {
	return c.call("reset_all", nil, nil)
}

// SaveToH5File saves the whole workspace to an HDF5 file.
func (c *Client) SaveToH5File(filename string) error {
	return c.call("save_to_h5_file", []any{filename}, nil)
}

// OpenH5Files opens application HDF5 files or imports datasets from foreign
// ones. importAll imports every object without prompting; resetAll clears
// existing data first. False values at the tail are omitted so the server
// applies its own defaults.
func (c *Client) OpenH5Files(paths []string, importAll, resetAll bool) error {
	args := []any{stringValues(paths)}
	if importAll || resetAll {
		args = append(args, importAll)
	}
	if resetAll {
		args = append(args, resetAll)
	}
	return c.call("open_h5_files", args, nil)
}

// ImportH5File opens the HDF5 browser on filename for selective import.
func (c *Client) ImportH5File(filename string, resetAll bool) error {
	args := []any{filename}
	if resetAll {
		args = append(args, resetAll)
	}
	return c.call("import_h5_file", args, nil)
}

// OpenObject loads a signal or image file into the current panel.
func (c *Client) OpenObject(filename string) error {
	return c.call("open_object", []any{filename}, nil)
}

// AddSignal sends a 1-D signal (x and y arrays) to the application.
func (c *Client) AddSignal(title string, x, y *npy.Array, attrs SignalAttrs) (bool, error) {
	xblob, err := x.Marshal()
	if err != nil {
		return false, fmt.Errorf("encode xdata: %w", err)
	}
	yblob, err := y.Marshal()
	if err != nil {
		return false, fmt.Errorf("encode ydata: %w", err)
	}
	var added bool
	args := []any{title, xblob, yblob, attrs.XUnit, attrs.YUnit, attrs.XLabel, attrs.YLabel}
	if err := c.call("add_signal", args, &added); err != nil {
		return false, err
	}
	return added, nil
}

// AddImage sends a 2-D image array to the application.
func (c *Client) AddImage(title string, data *npy.Array, attrs ImageAttrs) (bool, error) {
	blob, err := data.Marshal()
	if err != nil {
		return false, fmt.Errorf("encode image data: %w", err)
	}
	var added bool
	args := []any{title, blob, attrs.XUnit, attrs.YUnit, attrs.ZUnit, attrs.XLabel, attrs.YLabel, attrs.ZLabel}
	if err := c.call("add_image", args, &added); err != nil {
		return false, err
	}
	return added, nil
}

// SelectedObjectUUIDs returns the UUIDs of the currently selected objects,
// optionally including objects that belong to selected groups.
func (c *Client) SelectedObjectUUIDs(includeGroups bool) ([]string, error) {
	var uuids []string
	if err := c.call("get_sel_object_uuids", []any{includeGroups}, &uuids); err != nil {
		return nil, err
	}
	return uuids, nil
}

// SelectObjects selects objects in a panel. groupNum (1-based) scopes index
// references to a group; 0 means the current group. An empty panel means the
// current panel.
func (c *Client) SelectObjects(refs []Ref, groupNum int, panel string) error {
	values, err := refValues(refs)
	if err != nil {
		return err
	}
	args := []any{values}
	if groupNum > 0 || panel != "" {
		args = append(args, groupNum)
	}
	if panel != "" {
		args = append(args, panel)
	}
	return c.call("select_objects", args, nil)
}

// SelectGroups selects groups in a panel. An empty panel means the current
// panel.
func (c *Client) SelectGroups(refs []Ref, panel string) error {
	values, err := refValues(refs)
	if err != nil {
		return err
	}
	args := []any{values}
	if panel != "" {
		args = append(args, panel)
	}
	return c.call("select_groups", args, nil)
}

// DeleteMetadata removes metadata from the selected objects.
func (c *Client) DeleteMetadata(refreshPlot bool) error {
	return c.call("delete_metadata", []any{refreshPlot}, nil)
}

// ObjectTitles lists object titles in a panel ("" = current panel).
func (c *Client) ObjectTitles(panel string) ([]string, error) {
	var titles []string
	args := []any{}
	if panel != "" {
		args = append(args, panel)
	}
	if err := c.call("get_object_titles", args, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// ObjectUUIDs lists object UUIDs in a panel ("" = current panel).
func (c *Client) ObjectUUIDs(panel string) ([]string, error) {
	var uuids []string
	args := []any{}
	if panel != "" {
		args = append(args, panel)
	}
	if err := c.call("get_object_uuids", args, &uuids); err != nil {
		return nil, err
	}
	return uuids, nil
}

// AddAnnotations attaches annotation plot items, given as the JSON document
// produced by the plotting library's item serializer.
func (c *Client) AddAnnotations(itemsJSON string, refreshPlot bool, panel string) error {
	args := []any{itemsJSON, refreshPlot}
	if panel != "" {
		args = append(args, panel)
	}
	return c.call("add_annotations_from_items", args, nil)
}

// AddLabelWithTitle adds a label to the plot. An empty title uses the object
// title.
func (c *Client) AddLabelWithTitle(title, panel string) error {
	args := []any{}
	if title != "" || panel != "" {
		args = append(args, title)
	}
	if panel != "" {
		args = append(args, panel)
	}
	return c.call("add_label_with_title", args, nil)
}

// Calc runs compute function name in the current panel's processor. A nil
// param calls the function with its defaults. The returned parameters are
// nil when the function produced no output parameter.
func (c *Client) Calc(name string, param *dataset.Parameters) (*dataset.Parameters, error) {
	args := []any{name}
	if param != nil {
		triple, err := param.MarshalList()
		if err != nil {
			return nil, err
		}
		args = append(args, stringValues(triple))
	}
	var result any
	if err := c.call("calc", args, &result); err != nil {
		return nil, err
	}
	switch value := result.(type) {
	case nil, bool:
		return nil, nil
	case []any:
		out, err := dataset.FromAnyList(value)
		if err != nil {
			return nil, fmt.Errorf("calc %s: %w", name, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("calc %s: unexpected result type %T", name, result)
	}
}

// Compute forwards to Calc after checking that name is a compute function,
// mirroring the dynamic compute_* dispatch of the reference client.
func (c *Client) Compute(name string, param *dataset.Parameters) (*dataset.Parameters, error) {
	if !strings.HasPrefix(name, "compute_") {
		return nil, fmt.Errorf("DataLab has no compute function %q", name)
	}
	return c.Calc(name, param)
}

func stringValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
