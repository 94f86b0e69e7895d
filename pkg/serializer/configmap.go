/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/datecompare/pkg/defaults"
	"github.com/NVIDIA/datecompare/pkg/k8s/client"
)

// ManagedByLabel marks ConfigMaps created by the writer.
const ManagedByLabel = "app.kubernetes.io/managed-by"

// ConfigMapLocation identifies a ConfigMap and optionally one of its keys.
type ConfigMapLocation struct {
	Namespace string
	Name      string
	Key       string
}

// ParseConfigMapURI parses cm://namespace/name[/key].
func ParseConfigMapURI(uri string) (ConfigMapLocation, error) {
	rest, ok := strings.CutPrefix(uri, ConfigMapURIScheme)
	if !ok {
		return ConfigMapLocation{}, fmt.Errorf("invalid ConfigMap URI %q: missing %s scheme", uri, ConfigMapURIScheme)
	}

	parts := strings.Split(rest, "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return ConfigMapLocation{}, fmt.Errorf("invalid ConfigMap URI %q: expected %snamespace/name[/key]", uri, ConfigMapURIScheme)
	}

	loc := ConfigMapLocation{Namespace: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		if parts[2] == "" {
			return ConfigMapLocation{}, fmt.Errorf("invalid ConfigMap URI %q: empty key", uri)
		}
		loc.Key = parts[2]
	}
	return loc, nil
}

// String returns the URI form of l.
func (l ConfigMapLocation) String() string {
	s := ConfigMapURIScheme + l.Namespace + "/" + l.Name
	if l.Key != "" {
		s += "/" + l.Key
	}
	return s
}

// keyFor returns the data key written for format.
func (l ConfigMapLocation) keyFor(format Format) string {
	if l.Key != "" {
		return l.Key
	}
	return ConfigMapKeyPrefix + "." + format.Extension()
}

// ConfigMapWriter stores documents under a ConfigMap data key, creating the
// ConfigMap when needed. Other keys are preserved.
type ConfigMapWriter struct {
	format Format
	client kubernetes.Interface
	loc    ConfigMapLocation
}

// NewConfigMapWriter returns a writer storing documents at loc.
func NewConfigMapWriter(c kubernetes.Interface, format Format, loc ConfigMapLocation) *ConfigMapWriter {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &ConfigMapWriter{format: format, client: c, loc: loc}
}

func newConfigMapWriterFromEnv(format Format, loc ConfigMapLocation) (*ConfigMapWriter, error) {
	c, _, err := client.GetKubeClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client for %s: %w", loc, err)
	}
	return NewConfigMapWriter(c, format, loc), nil
}

// Serialize encodes v and stores it in the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	var buf bytes.Buffer
	if err := encode(&buf, w.format, v); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
	defer cancel()

	key := w.loc.keyFor(w.format)
	cms := w.client.CoreV1().ConfigMaps(w.loc.Namespace)

	existing, err := cms.Get(ctx, w.loc.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      w.loc.Name,
				Namespace: w.loc.Namespace,
				Labels:    map[string]string{ManagedByLabel: ConfigMapKeyPrefix},
			},
			Data: map[string]string{key: buf.String()},
		}
		if _, err := cms.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s: %w", w.loc, err)
		}
		slog.Debug("created ConfigMap", "location", w.loc.String(), "key", key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get ConfigMap %s: %w", w.loc, err)
	}

	if existing.Data == nil {
		existing.Data = map[string]string{}
	}
	existing.Data[key] = buf.String()
	if _, err := cms.Update(ctx, existing, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update ConfigMap %s: %w", w.loc, err)
	}
	slog.Debug("updated ConfigMap", "location", w.loc.String(), "key", key)
	return nil
}

// Close implements Closer.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ReadConfigMap returns the document stored at loc and its format. Without
// an explicit key the default yaml and json keys are tried, then the only key
// of a single-key ConfigMap.
func ReadConfigMap(ctx context.Context, c kubernetes.Interface, loc ConfigMapLocation) ([]byte, Format, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
	defer cancel()

	cm, err := c.CoreV1().ConfigMaps(loc.Namespace).Get(ctx, loc.Name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s: %w", loc, err)
	}

	if loc.Key != "" {
		data, ok := cm.Data[loc.Key]
		if !ok {
			return nil, "", fmt.Errorf("key %q not found in ConfigMap %s", loc.Key, loc)
		}
		return []byte(data), FormatFromPath(loc.Key), nil
	}

	for _, f := range []Format{FormatYAML, FormatJSON} {
		if data, ok := cm.Data[loc.keyFor(f)]; ok {
			return []byte(data), f, nil
		}
	}

	if len(cm.Data) == 1 {
		for k, data := range cm.Data {
			return []byte(data), FormatFromPath(k), nil
		}
	}
	return nil, "", fmt.Errorf("ConfigMap %s has no %s.yaml or %s.json key, name one as %s/<key>",
		loc, ConfigMapKeyPrefix, ConfigMapKeyPrefix, loc)
}
