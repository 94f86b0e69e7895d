/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

const testNamespace = "validation"

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    ConfigMapLocation
		wantErr bool
	}{
		{uri: "cm://ns/name", want: ConfigMapLocation{Namespace: "ns", Name: "name"}},
		{uri: "cm://ns/name/rules.json", want: ConfigMapLocation{Namespace: "ns", Name: "name", Key: "rules.json"}},
		{uri: "cm://ns", wantErr: true},
		{uri: "cm:///name", wantErr: true},
		{uri: "cm://ns/", wantErr: true},
		{uri: "cm://ns/name/", wantErr: true},
		{uri: "cm://a/b/c/d", wantErr: true},
		{uri: "file://ns/name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := ParseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.uri, got.String())
		})
	}
}

func TestConfigMapWriter(t *testing.T) {
	ctx := context.Background()
	clientset := fake.NewClientset()
	loc := ConfigMapLocation{Namespace: testNamespace, Name: "results"}

	w := NewConfigMapWriter(clientset, FormatYAML, loc)
	require.NoError(t, w.Serialize(ctx, testRule{"end_date", ">"}))

	cm, err := clientset.CoreV1().ConfigMaps(testNamespace).Get(ctx, "results", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, ConfigMapKeyPrefix, cm.Labels[ManagedByLabel])

	var got testRule
	require.NoError(t, yaml.Unmarshal([]byte(cm.Data["datecompare.yaml"]), &got))
	assert.Equal(t, "end_date", got.Attribute)

	// update keeps unrelated keys
	cm.Data["other"] = "kept"
	_, err = clientset.CoreV1().ConfigMaps(testNamespace).Update(ctx, cm, metav1.UpdateOptions{})
	require.NoError(t, err)

	require.NoError(t, w.Serialize(ctx, testRule{"start_date", "<"}))
	cm, err = clientset.CoreV1().ConfigMaps(testNamespace).Get(ctx, "results", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "kept", cm.Data["other"])
	assert.Contains(t, cm.Data["datecompare.yaml"], "start_date")
	assert.NoError(t, w.Close())
}

func TestReadConfigMap(t *testing.T) {
	ctx := context.Background()
	clientset := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "default-key", Namespace: testNamespace},
			Data:       map[string]string{"datecompare.json": `{"attribute":"a"}`, "notes": "x"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "single", Namespace: testNamespace},
			Data:       map[string]string{"rules.yml": "attribute: b\n"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "ambiguous", Namespace: testNamespace},
			Data:       map[string]string{"x": "1", "y": "2"},
		},
	)

	tests := []struct {
		name       string
		loc        ConfigMapLocation
		wantData   string
		wantFormat Format
		wantErr    bool
	}{
		{"default key", ConfigMapLocation{testNamespace, "default-key", ""}, `{"attribute":"a"}`, FormatJSON, false},
		{"single key", ConfigMapLocation{testNamespace, "single", ""}, "attribute: b\n", FormatYAML, false},
		{"explicit key", ConfigMapLocation{testNamespace, "default-key", "notes"}, "x", FormatYAML, false},
		{"missing key", ConfigMapLocation{testNamespace, "default-key", "nope"}, "", "", true},
		{"ambiguous", ConfigMapLocation{testNamespace, "ambiguous", ""}, "", "", true},
		{"not found", ConfigMapLocation{testNamespace, "missing", ""}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, format, err := ReadConfigMap(ctx, clientset, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, string(data))
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}
