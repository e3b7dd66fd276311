package llm

import (
	"strings"

	"github.com/abcideas/leadflow/internal/entity"
)

// Segmentation es el resultado de clasificar un lead. Es efímero: el caller
// decide si persiste los tres campos derivados sobre el lead.
type Segmentation struct {
	EtapaFunnel   string `json:"etapa_funnel"`
	Temperatura   string `json:"temperatura"`
	TipoContacto  string `json:"tipo_contacto"`
	SiguientePaso string `json:"siguiente_paso"`
	Justificacion string `json:"justificacion"`
}

type segmento struct {
	etapa       string
	temperatura string
	paso        string
}

// Tabla de temperatura/etapa. El orden importa: la urgencia gana a la duda
// y la duda al interés. Coincidencia por substring, sin tokenizar: un falso
// positivo por palabras pegadas es una limitación asumida.
var tablaSegmento = []regla[segmento]{
	{
		frases: []string{"me urge", "urgente", "ya mismo", "lo antes posible", "este mes"},
		valor: segmento{
			etapa:       entity.EtapaDecision,
			temperatura: entity.TempCaliente,
			paso:        "Proponer una llamada de cierre con una propuesta concreta y próximos pasos.",
		},
	},
	{
		frases: []string{"tiene sentido", "si tiene sentido", "no sé si tiene sentido", "no se si tiene sentido"},
		valor: segmento{
			etapa:       entity.EtapaAwareness,
			temperatura: entity.TempTibio,
			paso:        "Ayudarle primero a entender el problema y si realmente tiene sentido hacer la inversión.",
		},
	},
	{
		frases: []string{"me interesa", "quiero entender", "quiero saber", "estoy buscando", "evaluando opciones"},
		valor: segmento{
			etapa:       entity.EtapaConsideration,
			temperatura: entity.TempTibio,
			paso:        "Proponer una llamada corta para entender mejor el caso y adaptar la solución al negocio.",
		},
	},
}

var segmentoPorDefecto = segmento{
	etapa:       entity.EtapaAwareness,
	temperatura: entity.TempFrio,
	paso:        "Enviar contenido educativo sencillo para que vea el valor antes de tomar una decisión.",
}

// Tabla de tipo de contacto. Se evalúa sobre el mismo texto pero es
// independiente de la tabla de temperatura: un lead caliente puede ser a la
// vez una oportunidad con cotización en curso.
var tablaContacto = []regla[string]{
	{
		frases: []string{"cliente actual", "ya trabajo con", "renovar", "renovación", "renovacion"},
		valor:  entity.ContactoCliente,
	},
	{
		frases: []string{"propuesta", "cotización", "cotizacion", "presupuesto"},
		valor:  entity.ContactoOportunidad,
	},
}

const justificacionSegmento = "Clasificación basada en expresiones de urgencia, duda e interés dentro del texto recibido. " +
	"En un entorno real se podría sustituir por un modelo LLM entrenado."

// textoBusqueda concatena en minúsculas los campos libres y de contexto del
// lead. Los campos vacíos no son un error, simplemente no aportan.
func textoBusqueda(lead *entity.Lead) string {
	return strings.ToLower(strings.Join([]string{
		lead.MensajeInicial,
		lead.Necesidades,
		lead.Sector,
		lead.Fuente,
	}, " "))
}

// Segment clasifica un lead con heurísticas de frases. Es una función pura y
// total: con el mismo lead devuelve siempre lo mismo y nunca falla, como
// mucho cae en las categorías por defecto (frio / awareness / lead).
func Segment(lead *entity.Lead) Segmentation {
	texto := textoBusqueda(lead)

	seg := primeraCoincidencia(texto, tablaSegmento, segmentoPorDefecto)
	tipo := primeraCoincidencia(texto, tablaContacto, entity.ContactoLead)

	return Segmentation{
		EtapaFunnel:   seg.etapa,
		Temperatura:   seg.temperatura,
		TipoContacto:  tipo,
		SiguientePaso: seg.paso,
		Justificacion: justificacionSegmento,
	}
}
