// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HtrExtractedDataColumns holds the columns for the "htr_extracted_data" table.
	HtrExtractedDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeString, Size: 128},
		{Name: "source_type", Type: field.TypeString},
		{Name: "field_name", Type: field.TypeString, Size: 64},
		{Name: "extracted_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence_score", Type: field.TypeFloat32, Default: 0.99},
		{Name: "is_corrected", Type: field.TypeBool, Default: false},
		{Name: "corrected_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HtrExtractedDataTable holds the schema information for the "htr_extracted_data" table.
	HtrExtractedDataTable = &schema.Table{
		Name:       "htr_extracted_data",
		Columns:    HtrExtractedDataColumns,
		PrimaryKey: []*schema.Column{HtrExtractedDataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionfield_document_id_source_type_field_name",
				Unique:  true,
				Columns: []*schema.Column{HtrExtractedDataColumns[1], HtrExtractedDataColumns[2], HtrExtractedDataColumns[3]},
			},
			{
				Name:    "extractionfield_document_id",
				Unique:  false,
				Columns: []*schema.Column{HtrExtractedDataColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HtrExtractedDataTable,
	}
)

func init() {
	HtrExtractedDataTable.Annotation = &entsql.Annotation{
		Table: "htr_extracted_data",
	}
}
